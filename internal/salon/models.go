package salon

import (
	"encoding/json"
	"time"
)

// Provider is a bookable barber or esthetician.
type Provider struct {
	ID          string `json:"id"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// Client of the salon. NoShowCount is maintained server-side and is
// read-only here.
type Client struct {
	ID          string `json:"id"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	NoShowCount int    `json:"noShowCount"`
}

// Service is a priced catalog entry (haircut type or beauty service).
type Service struct {
	ID          json.Number `json:"id,omitempty"`
	Type        string      `json:"type"`
	Duration    int         `json:"duration"` // minutes
	Description string      `json:"description"`
	Price       float64     `json:"price"`
}

// Appointment unifies the two backend variants. Kind says which endpoint
// family it came from; the kind-dependent wire names are handled in
// UnmarshalJSON so the rest of the code sees one shape.
type Appointment struct {
	Kind Kind `json:"kind"`

	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	ClientFirstname string    `json:"clientFirstname"`
	ClientLastname  string    `json:"clientLastname"`
	ClientEmail     string    `json:"clientEmail"`
	ProviderID      string    `json:"providerId"`
	ProviderFirst   string    `json:"providerFirstname"`
	ProviderLast    string    `json:"providerLastname"`
	AppointmentTime time.Time `json:"appointmentTime"`
	BookedTime      time.Time `json:"bookedTime"`
	ServiceType     string    `json:"serviceType"`
	Price           float64   `json:"price"`
	Status          Status    `json:"status"`
}

// appointmentWire carries both variants' field names.
type appointmentWire struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	ClientFirstname string    `json:"clientFirstname"`
	ClientLastname  string    `json:"clientLastname"`
	ClientEmail     string    `json:"clientEmail"`
	AppointmentTime time.Time `json:"appointmentTime"`
	BookedTime      time.Time `json:"bookedTime"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`

	BarberID        string `json:"barberId"`
	BarberFirstname string `json:"barberFirstname"`
	BarberLastname  string `json:"barberLastname"`
	HaircutType     string `json:"haircutType"`

	EstheticianID        string `json:"estheticianId"`
	EstheticianFirstname string `json:"estheticianFirstname"`
	EstheticianLastname  string `json:"estheticianLastname"`
	EstheticType         string `json:"estheticType"`
}

func (a *Appointment) UnmarshalJSON(data []byte) error {
	var w appointmentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	a.ID = w.ID
	a.ClientID = w.ClientID
	a.ClientFirstname = w.ClientFirstname
	a.ClientLastname = w.ClientLastname
	a.ClientEmail = w.ClientEmail
	a.AppointmentTime = w.AppointmentTime
	a.BookedTime = w.BookedTime
	a.Price = w.Price
	a.Status = Status(w.Status)

	if w.EstheticianID != "" || w.EstheticType != "" {
		a.Kind = KindEsthetician
		a.ProviderID = w.EstheticianID
		a.ProviderFirst = w.EstheticianFirstname
		a.ProviderLast = w.EstheticianLastname
		a.ServiceType = w.EstheticType
	} else {
		a.Kind = KindBarber
		a.ProviderID = w.BarberID
		a.ProviderFirst = w.BarberFirstname
		a.ProviderLast = w.BarberLastname
		a.ServiceType = w.HaircutType
	}

	return nil
}

// AppointmentRequest is the create/update body for POST /appointment/ and
// PUT /appointment/{id}/admin/update. Payload renders the kind-dependent
// field names the backend expects.
type AppointmentRequest struct {
	Kind            Kind
	ID              string
	Email           string
	ProviderID      string
	ServiceType     string
	AppointmentTime time.Time
}

func (r AppointmentRequest) Payload() map[string]any {
	p := map[string]any{
		"email":                  r.Email,
		r.Kind.providerIDField(): r.ProviderID,
		r.Kind.serviceTypeField(): r.ServiceType,
		"appointmentTime":        r.AppointmentTime,
	}
	if r.ID != "" {
		p["id"] = r.ID
	}
	return p
}

// Schedule is a recurring weekly availability rule. WorkingDays uses the
// backend's numbering: 1=Monday .. 6=Saturday.
type Schedule struct {
	ID            string    `json:"id"`
	ProviderID    string    `json:"providerId"`
	WorkingDays   []int     `json:"workingDays"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	IsRecurring   bool      `json:"isRecurring"`
	EffectiveFrom string    `json:"effectiveFrom"`
	EffectiveTo   string    `json:"effectiveTo"`
}

// scheduleWire accepts either providerId field name.
type scheduleWire struct {
	ID            string    `json:"id"`
	BarberID      string    `json:"barberId"`
	EstheticianID string    `json:"estheticianId"`
	WorkingDays   []int     `json:"workingDays"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	IsRecurring   bool      `json:"isRecurring"`
	EffectiveFrom string    `json:"effectiveFrom"`
	EffectiveTo   string    `json:"effectiveTo"`
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	var w scheduleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	s.ID = w.ID
	s.ProviderID = w.BarberID
	if s.ProviderID == "" {
		s.ProviderID = w.EstheticianID
	}
	s.WorkingDays = w.WorkingDays
	s.StartTime = w.StartTime
	s.EndTime = w.EndTime
	s.IsRecurring = w.IsRecurring
	s.EffectiveFrom = w.EffectiveFrom
	s.EffectiveTo = w.EffectiveTo
	return nil
}

// ScheduleRequest is the POST /schedule/bulk body.
type ScheduleRequest struct {
	Kind          Kind
	ProviderID    string
	WorkingDays   []int
	StartTime     time.Time
	EndTime       time.Time
	IsRecurring   bool
	EffectiveFrom string // YYYY-MM-DD
	EffectiveTo   string // YYYY-MM-DD
}

func (r ScheduleRequest) Payload() map[string]any {
	return map[string]any{
		r.Kind.providerIDField(): r.ProviderID,
		"workingDays":            r.WorkingDays,
		"startTime":              r.StartTime,
		"endTime":                r.EndTime,
		"isRecurring":            r.IsRecurring,
		"effectiveFrom":          r.EffectiveFrom,
		"effectiveTo":            r.EffectiveTo,
	}
}

// AvailableSlot is one bookable window returned by the availability
// endpoint. The backend really does spell the field "starTime".
type AvailableSlot struct {
	ID         json.Number `json:"id,omitempty"`
	ProviderID string      `json:"providerId"`
	StartTime  time.Time   `json:"starTime"`
	EndTime    time.Time   `json:"endTime"`
	Available  bool        `json:"available"`
}

type slotWire struct {
	ID            json.Number `json:"id"`
	BarberID      string      `json:"barberId"`
	EstheticianID string      `json:"estheticianId"`
	StartTime     time.Time   `json:"starTime"`
	EndTime       time.Time   `json:"endTime"`
	Available     bool        `json:"available"`
}

func (s *AvailableSlot) UnmarshalJSON(data []byte) error {
	var w slotWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	s.ID = w.ID
	s.ProviderID = w.BarberID
	if s.ProviderID == "" {
		s.ProviderID = w.EstheticianID
	}
	s.StartTime = w.StartTime
	s.EndTime = w.EndTime
	s.Available = w.Available
	return nil
}
