package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultTopicColors is the palette cycled through when topics are created
// without an explicit color.
var DefaultTopicColors = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC949",
	"#AF7AA1",
	"#FF9DA7",
	"#9C755F",
	"#BAB0AC",
}

const (
	DefaultSize = 3
	SizeMin     = 1
	SizeMax     = 5

	TextboxMinWidth       = 80.0
	TextboxMinHeight      = 40.0
	TextboxDefaultOpacity = 1.0
	TextboxNewOpacity     = 0.85
	TextboxDefaultColor   = "#FFFFFF"

	DeadlineDefaultColor  = "#D62728"
	ConnectorDefaultColor = "#555555"
	LinkLineColor         = "#888888"

	DefaultClassification     = "Internal"
	ClassificationSizeMin     = 6
	ClassificationSizeMax     = 48
	ClassificationSizeDefault = 10
)

// NewID returns a fresh 32-character hex object id.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
