package salon

import "fmt"

// Kind identifies which side of the house a provider works:
// barbers sell haircuts, estheticians sell beauty services.
// The backend exposes two parallel endpoint families keyed by it.
type Kind string

const (
	KindBarber      Kind = "barber"
	KindEsthetician Kind = "esthetician"
)

func Kinds() []Kind {
	return []Kind{KindBarber, KindEsthetician}
}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBarber:
		return KindBarber, nil
	case KindEsthetician:
		return KindEsthetician, nil
	}
	return "", fmt.Errorf("unknown provider kind %q", s)
}

func (k Kind) Valid() bool {
	return k == KindBarber || k == KindEsthetician
}

// ServiceSegment is the catalog path segment for the kind.
func (k Kind) ServiceSegment() string {
	if k == KindEsthetician {
		return "esthetic"
	}
	return "haircut"
}

// providerIDField / serviceTypeField are the kind-dependent JSON names
// used by the appointment endpoints.
func (k Kind) providerIDField() string {
	if k == KindEsthetician {
		return "estheticianId"
	}
	return "barberId"
}

func (k Kind) serviceTypeField() string {
	if k == KindEsthetician {
		return "estheticType"
	}
	return "haircutType"
}

// ----------------------------------------------------
// Backend paths
// ----------------------------------------------------

func (k Kind) AppointmentListPath() string {
	return fmt.Sprintf("/appointment/%s/all", k)
}

func (k Kind) AvailabilityPath(providerID, date string) string {
	return fmt.Sprintf("/availability/%s/%s/slot?date=%s", k, providerID, date)
}

func (k Kind) ProviderListPath() string {
	return fmt.Sprintf("/%s/all", k)
}

func (k Kind) ProviderCreatePath() string {
	return fmt.Sprintf("/%s/", k)
}

func (k Kind) ProviderUpdatePath(id string) string {
	return fmt.Sprintf("/%s/%s/admin/update", k, id)
}

func (k Kind) ProviderDeletePath(id string) string {
	return fmt.Sprintf("/%s/%s/admin/delete", k, id)
}

func (k Kind) ServiceListPath() string {
	return fmt.Sprintf("/%s/all", k.ServiceSegment())
}

func (k Kind) ServiceCreatePath() string {
	return fmt.Sprintf("/%s/", k.ServiceSegment())
}

func (k Kind) ServiceUpdatePath(id string) string {
	return fmt.Sprintf("/%s/%s/admin/update", k.ServiceSegment(), id)
}

func (k Kind) ServiceDeletePath(id string) string {
	return fmt.Sprintf("/%s/%s/admin/delete", k.ServiceSegment(), id)
}

func (k Kind) ScheduleListPath(providerID string) string {
	return fmt.Sprintf("/schedule/%s/%s", providerID, k)
}

func (k Kind) ScheduleDeleteAllPath(providerID string) string {
	return fmt.Sprintf("/schedule/%s/%s/delete-all", providerID, k)
}
