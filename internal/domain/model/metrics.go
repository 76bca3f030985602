package model

// Metrics holds the raw posting counts for one aggregation bucket. Rates are
// derived on demand and never stored rounded, so parent scopes can always be
// recomputed from raw counts without compounding error.
type Metrics struct {
	VacancyFilled   int
	VacancyUnfilled int
	AbsenceFilled   int
	AbsenceUnfilled int
}

// Count returns a copy of m with one posting of the given type and fill
// outcome added.
func (m Metrics) Count(t JobType, f FillStatus) Metrics {
	switch {
	case t == JobTypeVacancy && f == FillFilled:
		m.VacancyFilled++
	case t == JobTypeVacancy:
		m.VacancyUnfilled++
	case t == JobTypeAbsence && f == FillFilled:
		m.AbsenceFilled++
	case t == JobTypeAbsence:
		m.AbsenceUnfilled++
	}
	return m
}

// Add combines two metric sets.
func (m Metrics) Add(other Metrics) Metrics {
	return Metrics{
		VacancyFilled:   m.VacancyFilled + other.VacancyFilled,
		VacancyUnfilled: m.VacancyUnfilled + other.VacancyUnfilled,
		AbsenceFilled:   m.AbsenceFilled + other.AbsenceFilled,
		AbsenceUnfilled: m.AbsenceUnfilled + other.AbsenceUnfilled,
	}
}

// TotalVacancy is the number of vacancy postings.
func (m Metrics) TotalVacancy() int { return m.VacancyFilled + m.VacancyUnfilled }

// TotalAbsence is the number of absence postings.
func (m Metrics) TotalAbsence() int { return m.AbsenceFilled + m.AbsenceUnfilled }

// Total is the number of postings of any type.
func (m Metrics) Total() int { return m.TotalVacancy() + m.TotalAbsence() }

// Filled is the number of filled postings of any type.
func (m Metrics) Filled() int { return m.VacancyFilled + m.AbsenceFilled }

// Unfilled is the number of unfilled postings of any type.
func (m Metrics) Unfilled() int { return m.VacancyUnfilled + m.AbsenceUnfilled }

// HasData reports whether the bucket saw any postings. A zero-total bucket
// must render as "No data", never as "0%".
func (m Metrics) HasData() bool { return m.Total() > 0 }

// VacancyFillRate is filled/total for vacancies in [0,1]; 0 when no vacancies.
func (m Metrics) VacancyFillRate() float64 {
	return ratio(m.VacancyFilled, m.TotalVacancy())
}

// AbsenceFillRate is filled/total for absences in [0,1]; 0 when no absences.
func (m Metrics) AbsenceFillRate() float64 {
	return ratio(m.AbsenceFilled, m.TotalAbsence())
}

// OverallFillRate is filled/total across both types in [0,1]; 0 when empty.
func (m Metrics) OverallFillRate() float64 {
	return ratio(m.Filled(), m.Total())
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
