// Package dashboard derives the stat cards and chart series from
// already-fetched lists. Everything here is pure and O(n); no network.
package dashboard

import (
	"sort"
	"time"

	"github.com/maisonbelle/salon-admin/internal/salon"
)

const dayLayout = "02/01/2006"

type Stats struct {
	TotalAppointments       int     `json:"totalAppointments"`
	BarberAppointments      int     `json:"barberAppointments"`
	EstheticianAppointments int     `json:"estheticianAppointments"`
	ActiveBarbers           int     `json:"activeBarbers"`
	ActiveEstheticians      int     `json:"activeEstheticians"`
	ActiveProviders         int     `json:"activeProviders"`
	UniqueClients           int     `json:"uniqueClients"`
	MonthlyRevenue          float64 `json:"monthlyRevenue"`
}

// DayCount is one bar of the per-day chart.
type DayCount struct {
	Date         string `json:"date"`
	Barbers      int    `json:"barberCount"`
	Estheticians int    `json:"estheticianCount"`
	Total        int    `json:"totalCount"`

	day time.Time
}

func Compute(
	barberAps []salon.Appointment,
	estheticianAps []salon.Appointment,
	barbers []salon.Provider,
	estheticians []salon.Provider,
	now time.Time,
) Stats {

	activeBarbers := ActiveCount(barbers)
	activeEstheticians := ActiveCount(estheticians)

	return Stats{
		TotalAppointments:       len(barberAps) + len(estheticianAps),
		BarberAppointments:      len(barberAps),
		EstheticianAppointments: len(estheticianAps),
		ActiveBarbers:           activeBarbers,
		ActiveEstheticians:      activeEstheticians,
		ActiveProviders:         activeBarbers + activeEstheticians,
		UniqueClients:           UniqueClients(barberAps, estheticianAps),
		MonthlyRevenue:          MonthlyRevenue(now, barberAps, estheticianAps),
	}
}

func ActiveCount(providers []salon.Provider) int {
	n := 0
	for _, p := range providers {
		if p.Available {
			n++
		}
	}
	return n
}

// UniqueClients is the cardinality of client ids across both lists.
func UniqueClients(lists ...[]salon.Appointment) int {
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, ap := range list {
			if ap.ClientID != "" {
				seen[ap.ClientID] = struct{}{}
			}
		}
	}
	return len(seen)
}

// MonthlyRevenue sums prices of appointments whose scheduled time falls
// in now's calendar month and year, evaluated in now's location.
func MonthlyRevenue(now time.Time, lists ...[]salon.Appointment) float64 {
	total := 0.0
	for _, list := range lists {
		for _, ap := range list {
			when := ap.AppointmentTime.In(now.Location())
			if when.Year() == now.Year() && when.Month() == now.Month() {
				total += ap.Price
			}
		}
	}
	return total
}

// AppointmentsByDay groups both appointment kinds by calendar date in
// loc, split per kind, sorted chronologically.
func AppointmentsByDay(
	barberAps []salon.Appointment,
	estheticianAps []salon.Appointment,
	loc *time.Location,
) []DayCount {

	counts := make(map[string]*DayCount)

	bump := func(ap salon.Appointment, esthetician bool) {
		local := ap.AppointmentTime.In(loc)
		key := local.Format(dayLayout)

		dc, ok := counts[key]
		if !ok {
			day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
			dc = &DayCount{Date: key, day: day}
			counts[key] = dc
		}

		if esthetician {
			dc.Estheticians++
		} else {
			dc.Barbers++
		}
		dc.Total++
	}

	for _, ap := range barberAps {
		bump(ap, false)
	}
	for _, ap := range estheticianAps {
		bump(ap, true)
	}

	out := make([]DayCount, 0, len(counts))
	for _, dc := range counts {
		out = append(out, *dc)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].day.Before(out[j].day)
	})

	return out
}
