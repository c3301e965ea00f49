package handler

import (
	"github.com/tradesim/platform/internal/core/domain"
	"github.com/tradesim/platform/internal/core/ports"
)

// screenResponse is the envelope of every rendered screen.
type screenResponse struct {
	Screen string `json:"screen"`
	Data   any    `json:"data"`
}

type facilitatorLoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type participantLoginRequest struct {
	ParticipantID string `json:"participantId" form:"participantId" validate:"required"`
	Password      string `json:"password" form:"password" validate:"required,min=8"`
}

type loginFormView struct {
	Role   domain.Role `json:"role"`
	Fields []string    `json:"fields"`
}

type dashboardView struct {
	User        *domain.Identity    `json:"user"`
	Metrics     []domain.Metric     `json:"metrics"`
	Query       string              `json:"query"`
	Simulations []domain.Simulation `json:"simulations"`
	Current     *domain.Simulation  `json:"current,omitempty"`
}

type startSimulationRequest struct {
	ID string `json:"id" form:"id" query:"id"`
}

type createScenarioRequest struct {
	Title            string `json:"title" form:"title" validate:"required"`
	Description      string `json:"description" form:"description" validate:"max=500"`
	ScenarioType     string `json:"scenarioType" form:"scenarioType" validate:"required,scenario_type"`
	Difficulty       string `json:"difficulty" form:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	MinPrice         int    `json:"minPrice" form:"minPrice" validate:"gte=0,lte=200000"`
	MaxPrice         int    `json:"maxPrice" form:"maxPrice" validate:"gte=0,lte=200000,gtefield=MinPrice"`
	TimeDuration     string `json:"timeDuration" form:"timeDuration" validate:"required,oneof=1d 1w 1m custom"`
	ParticipantLimit int    `json:"participantLimit" form:"participantLimit" validate:"required,min=1"`
}

func (r createScenarioRequest) input() ports.CreateScenarioInput {
	return ports.CreateScenarioInput{
		Title:            r.Title,
		Description:      r.Description,
		ScenarioType:     r.ScenarioType,
		Difficulty:       r.Difficulty,
		MinPrice:         r.MinPrice,
		MaxPrice:         r.MaxPrice,
		TimeDuration:     r.TimeDuration,
		ParticipantLimit: r.ParticipantLimit,
	}
}

type scenarioFormView struct {
	ScenarioTypes    []string `json:"scenarioTypes"`
	Difficulties     []string `json:"difficulties"`
	TimeDurations    []string `json:"timeDurations"`
	ParticipantLimit []int    `json:"participantLimits"`
	PriceStep        int      `json:"priceStep"`
	MaxPrice         int      `json:"maxPrice"`
	MaxDescription   int      `json:"maxDescription"`
}

type monitorView struct {
	Active     bool               `json:"active"`
	Simulation *domain.Simulation `json:"simulation,omitempty"`
}

type tradingView struct {
	User          *domain.Identity          `json:"user"`
	Market        []domain.Quote            `json:"market"`
	Portfolio     domain.Portfolio          `json:"portfolio"`
	Leaderboard   []domain.LeaderboardEntry `json:"leaderboard"`
	TimeRemaining string                    `json:"timeRemaining"`
}

type orderRequest struct {
	Side     string  `json:"side" form:"side" validate:"required,oneof=buy sell"`
	Symbol   string  `json:"symbol" form:"symbol" validate:"required"`
	Quantity float64 `json:"quantity" form:"quantity" validate:"gt=0"`
}

type resultsView struct {
	Results     domain.FinalResults       `json:"results"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	Badges      []domain.BadgeDefinition  `json:"badges"`
	UserBadges  []domain.BadgeDefinition  `json:"userBadges"`
	Role        domain.Role               `json:"role"`
}
