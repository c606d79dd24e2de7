package metrics

import (
	"github.com/vfg2006/rental-insights-api/internal/domain"
	"github.com/vfg2006/rental-insights-api/pkg/utils"
)

// MinActionableGap é o menor número de noites vazias seguidas que conta como lacuna
const MinActionableGap = 3

// ScanVacancy percorre os dias 1..days e soma as sequências vazias de MinActionableGap ou mais noites.
// Lacunas de 1 ou 2 noites não contam.
func ScanVacancy(occupied map[int]bool, days int) int {
	empty, run := 0, 0
	for day := 1; day <= days; day++ {
		if !occupied[day] {
			run++
			continue
		}
		if run >= MinActionableGap {
			empty += run
		}
		run = 0
	}
	if run >= MinActionableGap {
		empty += run
	}
	return empty
}

// GapActionFor mapeia as noites vazias do mês para a ação sugerida
func GapActionFor(emptyNights int) domain.GapAction {
	switch {
	case emptyNights >= 12:
		return domain.GapActionAggressiveCampaign
	case emptyNights >= 8:
		return domain.GapActionMidweekPromo
	case emptyNights >= 4:
		return domain.GapActionOpenCalendarUpsell
	default:
		return domain.GapActionNormal
	}
}

type apartmentMonth struct {
	apartmentID string
	monthKey
}

// Gaps analisa as lacunas usando apenas noites com data exata. Cada apartamento é percorrido
// nos meses em que tem noites; a diária média do mês cai para a média geral quando o mês não tem noites.
func Gaps(entries []domain.NightlyLedgerEntry) domain.GapReport {
	occupiedDays := make(map[apartmentMonth]map[int]bool)
	months := make(map[monthKey]*domain.GapRecord)
	totalRevenue, totalNights := 0.0, 0

	for _, entry := range entries {
		if !entry.Precise {
			continue
		}

		key := monthKey{year: entry.Year, month: entry.Month}
		aptKey := apartmentMonth{apartmentID: entry.ApartmentID, monthKey: key}
		if occupiedDays[aptKey] == nil {
			occupiedDays[aptKey] = make(map[int]bool)
		}
		occupiedDays[aptKey][entry.Day] = true

		record, ok := months[key]
		if !ok {
			record = &domain.GapRecord{Year: entry.Year, Month: entry.Month}
			months[key] = record
		}
		record.Revenue += entry.Revenue
		record.OccupiedNights++

		totalRevenue += entry.Revenue
		totalNights++
	}

	for aptKey, days := range occupiedDays {
		record := months[aptKey.monthKey]
		record.EmptyNights += ScanVacancy(days, utils.DaysInMonth(aptKey.year, aptKey.month))
	}

	datasetRate := utils.Divide(totalRevenue, float64(totalNights))
	report := domain.GapReport{
		Months:      make([]domain.GapRecord, 0, len(months)),
		AverageRate: utils.RoundWithTwoDecimalPlace(datasetRate),
	}

	for _, key := range sortedMonthKeys(months) {
		record := months[key]

		rate := datasetRate
		if record.OccupiedNights > 0 {
			rate = record.Revenue / float64(record.OccupiedNights)
		}
		lost := float64(record.EmptyNights) * rate

		record.AverageRate = utils.RoundWithTwoDecimalPlace(rate)
		record.LostRevenue = utils.RoundWithTwoDecimalPlace(lost)
		record.Revenue = utils.RoundWithTwoDecimalPlace(record.Revenue)
		record.Action = GapActionFor(record.EmptyNights)

		report.TotalEmptyNights += record.EmptyNights
		report.TotalLostRevenue += lost
		report.Months = append(report.Months, *record)
	}
	report.TotalLostRevenue = utils.RoundWithTwoDecimalPlace(report.TotalLostRevenue)

	return report
}
