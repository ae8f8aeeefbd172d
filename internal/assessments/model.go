package assessments

import (
	"time"

	"github.com/SAADSTACK/ergoassess/internal/assess/angles"
	"github.com/SAADSTACK/ergoassess/internal/assess/reba"
	"github.com/SAADSTACK/ergoassess/internal/assess/recommend"
	"github.com/SAADSTACK/ergoassess/internal/assess/rula"
)

// Assessment sources.
const (
	SourceAngles = "angles"
	SourceImage  = "image"
)

// Assessment is one complete ergonomic evaluation: the measured angles, both
// scoring results and the derived action plan.
type Assessment struct {
	ID        string
	SubjectID string
	ImageID   string
	Source    string

	Angles      angles.AngleSet
	RULAOptions rula.Options
	REBAOptions reba.Options

	RULA            rula.Result
	REBA            reba.Result
	Recommendations recommend.Report

	// Confidence is the pose-estimation confidence for image-sourced
	// assessments, zero otherwise.
	Confidence float64
	Notes      string
	CreatedAt  time.Time
}
