package entities

import (
	"fmt"
	"strings"
)

// Quality is the ordinal grade of a material or crafted item, D lowest and S
// highest. The numeric value is used for quality arithmetic.
type Quality int

// Quality grades
const (
	QualityD Quality = iota + 1
	QualityC
	QualityB
	QualityA
	QualityS
)

// Quality bounds
const (
	MinQuality = QualityD
	MaxQuality = QualityS
)

var qualityNames = map[Quality]string{
	QualityD: "D",
	QualityC: "C",
	QualityB: "B",
	QualityA: "A",
	QualityS: "S",
}

func (q Quality) String() string {
	if s, ok := qualityNames[q]; ok {
		return s
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// IsValid reports whether q is one of the five grades
func (q Quality) IsValid() bool {
	return q >= MinQuality && q <= MaxQuality
}

// ClampQuality maps any integer onto the grade scale, saturating at D and S
func ClampQuality(v int) Quality {
	if v < int(MinQuality) {
		return MinQuality
	}
	if v > int(MaxQuality) {
		return MaxQuality
	}
	return Quality(v)
}

// ParseQuality parses a grade letter such as "B"
func ParseQuality(s string) (Quality, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for q, name := range qualityNames {
		if name == upper {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quality %q", s)
}

// MarshalText encodes the grade letter
func (q Quality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("invalid quality %d", int(q))
	}
	return []byte(q.String()), nil
}

// UnmarshalText decodes a grade letter
func (q *Quality) UnmarshalText(text []byte) error {
	parsed, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
