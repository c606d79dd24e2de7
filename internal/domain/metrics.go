package domain

// OccupancyPoint é a ocupação de um mês para um conjunto de apartamentos
type OccupancyPoint struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	OccupiedNights  int     `json:"occupied_nights"`
	AvailableNights int     `json:"available_nights"`
	Occupancy       float64 `json:"occupancy"` // percentual limitado a 100
}

// YearlyOccupancy resume a ocupação de um ano inteiro
type YearlyOccupancy struct {
	Year            int     `json:"year"`
	OccupiedNights  int     `json:"occupied_nights"`
	AvailableNights int     `json:"available_nights"`
	Revenue         float64 `json:"revenue"`
	Occupancy       float64 `json:"occupancy"`
}

// OccupancyReport agrupa a série mensal e os totais anuais
type OccupancyReport struct {
	Monthly []OccupancyPoint  `json:"monthly"`
	Yearly  []YearlyOccupancy `json:"yearly"`
}

// GapAction é a ação sugerida para um mês com noites vazias
type GapAction string

const (
	GapActionAggressiveCampaign GapAction = "aggressive_campaign"
	GapActionMidweekPromo       GapAction = "targeted_midweek_promo"
	GapActionOpenCalendarUpsell GapAction = "open_calendar_upsell"
	GapActionNormal             GapAction = "normal_gap"
)

// GapRecord descreve as lacunas acionáveis (3+ noites seguidas) de um mês
type GapRecord struct {
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	EmptyNights    int       `json:"empty_nights"`
	OccupiedNights int       `json:"occupied_nights"`
	Revenue        float64   `json:"revenue"`
	AverageRate    float64   `json:"average_rate"`
	LostRevenue    float64   `json:"lost_revenue"`
	Action         GapAction `json:"action"`
}

// GapReport reúne os meses analisados e os totais
type GapReport struct {
	Months           []GapRecord `json:"months"`
	TotalEmptyNights int         `json:"total_empty_nights"`
	TotalLostRevenue float64     `json:"total_lost_revenue"`
	AverageRate      float64     `json:"average_rate"`
}

// LeadTimeBucketRow é uma faixa da distribuição de antecedência
type LeadTimeBucketRow struct {
	Label        string  `json:"label"`
	MinDays      int     `json:"min_days"`
	MaxDays      *int    `json:"max_days"` // nil na faixa aberta
	Count        int     `json:"count"`
	AveragePrice float64 `json:"average_price"`
	Percentage   float64 `json:"percentage"`
}

// WeekpartClass acumula as noites de uma classe (fim de semana ou dia útil)
type WeekpartClass struct {
	OccupiedNights  int     `json:"occupied_nights"`
	AvailableNights int     `json:"available_nights"`
	Revenue         float64 `json:"revenue"`
	AveragePrice    float64 `json:"average_price"`
	Occupancy       float64 `json:"occupancy"`
}

// WeekpartMetrics compara fins de semana (sexta e sábado) com dias úteis
type WeekpartMetrics struct {
	Weekend        WeekpartClass `json:"weekend"`
	Weekday        WeekpartClass `json:"weekday"`
	WeekendPremium float64       `json:"weekend_premium"`
}

// Season é uma estação meteorológica
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// Seasons lista as estações na ordem usada para desempate
var Seasons = []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}

// SeasonalSummary compara a temporada atual com as anteriores
type SeasonalSummary struct {
	Season              Season   `json:"season"`
	SeasonYear          int      `json:"season_year"`
	Revenue             float64  `json:"revenue"`
	OccupiedNights      int      `json:"occupied_nights"`
	AvailableNights     int      `json:"available_nights"`
	RevPAN              float64  `json:"revpan"`
	Occupancy           float64  `json:"occupancy"`
	BaselineRevenue     *float64 `json:"baseline_revenue"`      // média das temporadas anteriores
	BaselineChange      *float64 `json:"baseline_change"`       // percentual contra a média
	PreviousYearRevenue *float64 `json:"previous_year_revenue"` // temporada do ano imediatamente anterior
	YoYChange           *float64 `json:"yoy_change"`
	Rank                int      `json:"rank"`
}

// RevPanPoint é a receita por noite disponível de um mês
type RevPanPoint struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	Revenue         float64 `json:"revenue"`
	OccupiedNights  int     `json:"occupied_nights"`
	AvailableNights int     `json:"available_nights"`
	RevPAN          float64 `json:"revpan"`
	AveragePrice    float64 `json:"average_price"`
	Occupancy       float64 `json:"occupancy"`
}

// YearToDateRevPAN compara o acumulado do ano até o mês de corte com o mesmo corte do ano anterior
type YearToDateRevPAN struct {
	Year           int      `json:"year"`
	CutoffMonth    int      `json:"cutoff_month"`
	RevPAN         float64  `json:"revpan"`
	PreviousYear   int      `json:"previous_year"`
	PreviousRevPAN float64  `json:"previous_revpan"`
	Change         *float64 `json:"change"`
}

// RevPanReport agrupa a série mensal, a meta e o acumulado do ano
type RevPanReport struct {
	Monthly      []RevPanPoint     `json:"monthly"`
	AveragePrice float64           `json:"average_price"`
	TargetRevPAN float64           `json:"target_revpan"`
	YearToDate   *YearToDateRevPAN `json:"year_to_date"`
}

// PricingAction é a recomendação de preço de um mês
type PricingAction string

const (
	PricingRaise    PricingAction = "raise_prices"
	PricingLower    PricingAction = "lower_prices_promote_long_stays"
	PricingBalanced PricingAction = "balanced"
	PricingMonitor  PricingAction = "monitor"
)

// PricingRecommendation posiciona um mês no quadrante ocupação x preço médio
type PricingRecommendation struct {
	Year         int           `json:"year"`
	Month        int           `json:"month"`
	Occupancy    float64       `json:"occupancy"`
	AveragePrice float64       `json:"average_price"`
	RevPAN       float64       `json:"revpan"`
	Action       PricingAction `json:"action"`
}
