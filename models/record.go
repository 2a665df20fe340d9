package models

import "time"

// CareRecord one logged care event
type CareRecord struct {
	// ID record ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required,uuid_rfc4122"`

	// Timestamp the moment the care event pertains to
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;not null;index"`

	// Category care note category
	Category CareCategory `json:"category" gorm:"column:category;not null" validate:"required,care_category"`

	// TranscriptText transcribed speech, normalized. Never an empty string.
	TranscriptText *string `json:"transcript_text,omitempty" gorm:"column:transcript_text"`
	// FreeMemoText free-form memo, normalized. Never an empty string.
	FreeMemoText *string `json:"free_memo_text,omitempty" gorm:"column:free_memo_text"`
	// CaregiverName name of the caregiver who logged the event, normalized
	CaregiverName *string `json:"caregiver_name,omitempty" gorm:"column:caregiver_name"`

	// BodyTemperature body temperature in °C
	BodyTemperature *float64 `json:"body_temperature,omitempty" gorm:"column:body_temperature"`
	// SystolicBP systolic blood pressure in mmHg
	SystolicBP *int `json:"systolic_bp,omitempty" gorm:"column:systolic_bp"`
	// DiastolicBP diastolic blood pressure in mmHg
	DiastolicBP *int `json:"diastolic_bp,omitempty" gorm:"column:diastolic_bp"`
	// PulseRate pulse rate in BPM
	PulseRate *int `json:"pulse_rate,omitempty" gorm:"column:pulse_rate"`
	// OxygenSaturation SpO2 in percent
	OxygenSaturation *int `json:"oxygen_saturation,omitempty" gorm:"column:oxygen_saturation"`

	// DurationSeconds recording duration. Nil or zero means not tracked.
	DurationSeconds *int `json:"duration_seconds,omitempty" gorm:"column:duration_seconds"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp. Advances only on an actual field change.
	UpdatedAt time.Time `json:"updated_at"`
}

// VitalSigns the optional vital sign measurements attachable to a record
type VitalSigns struct {
	// BodyTemperature body temperature in °C
	BodyTemperature *float64 `json:"body_temperature,omitempty"`
	// SystolicBP systolic blood pressure in mmHg
	SystolicBP *int `json:"systolic_bp,omitempty"`
	// DiastolicBP diastolic blood pressure in mmHg
	DiastolicBP *int `json:"diastolic_bp,omitempty"`
	// PulseRate pulse rate in BPM
	PulseRate *int `json:"pulse_rate,omitempty"`
	// OxygenSaturation SpO2 in percent
	OxygenSaturation *int `json:"oxygen_saturation,omitempty"`
}

// Vitals the vital sign measurements carried by the record
func (r CareRecord) Vitals() VitalSigns {
	return VitalSigns{
		BodyTemperature:  r.BodyTemperature,
		SystolicBP:       r.SystolicBP,
		DiastolicBP:      r.DiastolicBP,
		PulseRate:        r.PulseRate,
		OxygenSaturation: r.OxygenSaturation,
	}
}

// SetVitals overwrite the vital sign fields of the record
func (r *CareRecord) SetVitals(v VitalSigns) {
	r.BodyTemperature = v.BodyTemperature
	r.SystolicBP = v.SystolicBP
	r.DiastolicBP = v.DiastolicBP
	r.PulseRate = v.PulseRate
	r.OxygenSaturation = v.OxygenSaturation
}

// HasMeasurement whether at least one vital field carries a value
func (v VitalSigns) HasMeasurement() bool {
	return v.BodyTemperature != nil ||
		v.SystolicBP != nil ||
		v.DiastolicBP != nil ||
		v.PulseRate != nil ||
		v.OxygenSaturation != nil
}

// Equal field-by-field comparison of two vital sign sets
func (v VitalSigns) Equal(other VitalSigns) bool {
	return float64PtrEqual(v.BodyTemperature, other.BodyTemperature) &&
		intPtrEqual(v.SystolicBP, other.SystolicBP) &&
		intPtrEqual(v.DiastolicBP, other.DiastolicBP) &&
		intPtrEqual(v.PulseRate, other.PulseRate) &&
		intPtrEqual(v.OxygenSaturation, other.OxygenSaturation)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func float64PtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
