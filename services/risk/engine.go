package risk

import (
	"context"

	"github.com/foundershield/foundershield/dto"
	"github.com/foundershield/foundershield/interfaces"
	"github.com/opentracing/opentracing-go"
)

// Band maps a minimum score to a level label. Bands are ordered from the
// highest Min down; LevelFor picks the first band the score reaches.
type Band struct {
	Min   int
	Level string
}

// Profile describes how an engine turns provider points into a score.
// Deduction profiles start high and subtract, additive profiles start at
// zero and accumulate up to MaxScore.
type Profile struct {
	Name      string
	BaseScore int
	MaxScore  int
	Additive  bool
	Bands     []Band
}

func (p Profile) LevelFor(score int) string {
	for _, band := range p.Bands {
		if score >= band.Min {
			return band.Level
		}
	}
	if len(p.Bands) > 0 {
		return p.Bands[len(p.Bands)-1].Level
	}
	return ""
}

// Engine runs a fixed provider chain under one profile. Providers never
// abort the run: an unavailable provider contributes zero points and the
// chain continues.
type Engine struct {
	profile   Profile
	providers []interfaces.SignalProvider
}

func NewEngine(profile Profile, providers ...interfaces.SignalProvider) *Engine {
	return &Engine{
		profile:   profile,
		providers: providers,
	}
}

func (e *Engine) Profile() Profile {
	return e.profile
}

// Run evaluates every provider in order and folds the points into the
// profile's score range. The per-provider results are returned alongside the
// score so callers can surface the raw signals.
func (e *Engine) Run(ctx context.Context, input dto.AnalysisInput) (int, []dto.SignalResult) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "Engine.Run")
	defer span.Finish()
	span.SetTag("profile", e.profile.Name)

	results := make([]dto.SignalResult, 0, len(e.providers))
	total := 0
	for _, provider := range e.providers {
		result := provider.Evaluate(ctx, input)
		result.Provider = provider.Name()
		results = append(results, result)
		if result.Available {
			total += result.Score
		}
	}

	score := e.profile.BaseScore
	if e.profile.Additive {
		score += total
	} else {
		score -= total
	}
	return clamp(score, 0, e.profile.MaxScore), results
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
