package parser

import (
	"regexp"
	"strconv"
	"strings"

	"grindlog/internal/models"
)

// ParsedPlayer is a player note parsed from quick-add syntax.
type ParsedPlayer struct {
	Name       string
	ColorTag   models.ColorTag
	TotalHands int
	VPIP       float64
	PFR        float64
	Stakes     []int
	Errors     []string
}

var (
	tagRegex    = regexp.MustCompile(`#([a-zA-Z]+)`)
	handsRegex  = regexp.MustCompile(`\bhands:(\d+)`)
	vpipRegex   = regexp.MustCompile(`\bvpip:(\d+(?:\.\d+)?)`)
	pfrRegex    = regexp.MustCompile(`\bpfr:(\d+(?:\.\d+)?)`)
	stakesRegex = regexp.MustCompile(`\bstakes:([0-9,]+)`)
)

// ParsePlayer extracts opponent fields from natural quick-add syntax.
// Syntax: "Name #red hands:1200 vpip:34 pfr:8 stakes:100,200"
// Everything not recognized as a token is the display name. The color
// tag defaults to green when absent; an unknown tag is an error.
func ParsePlayer(input string) ParsedPlayer {
	result := ParsedPlayer{
		ColorTag: models.TagGreen,
		Errors:   []string{},
	}

	if matches := tagRegex.FindStringSubmatch(input); len(matches) > 1 {
		tag := models.ColorTag(strings.ToLower(matches[1]))
		if tag.Valid() {
			result.ColorTag = tag
		} else {
			result.Errors = append(result.Errors, "Unknown color tag '#"+matches[1]+"'. Use: green, yellow, red, cyan, or magenta")
		}
		input = tagRegex.ReplaceAllString(input, "")
	}

	if matches := handsRegex.FindStringSubmatch(input); len(matches) > 1 {
		hands, err := strconv.Atoi(matches[1])
		if err != nil || hands < 0 {
			result.Errors = append(result.Errors, "Invalid hands count '"+matches[1]+"'")
		} else {
			result.TotalHands = hands
		}
		input = handsRegex.ReplaceAllString(input, "")
	}

	if matches := vpipRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.VPIP = parsePercent(matches[1], "vpip", &result.Errors)
		input = vpipRegex.ReplaceAllString(input, "")
	}

	if matches := pfrRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.PFR = parsePercent(matches[1], "pfr", &result.Errors)
		input = pfrRegex.ReplaceAllString(input, "")
	}

	if matches := stakesRegex.FindStringSubmatch(input); len(matches) > 1 {
		for _, part := range strings.Split(matches[1], ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			stake, err := strconv.Atoi(part)
			if err != nil {
				result.Errors = append(result.Errors, "Invalid stake '"+part+"'")
				continue
			}
			result.Stakes = append(result.Stakes, stake)
		}
		input = stakesRegex.ReplaceAllString(input, "")
	}

	// What remains is the name (collapse leftover whitespace)
	result.Name = strings.Join(strings.Fields(input), " ")

	return result
}

func parsePercent(raw, field string, errs *[]string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 100 {
		*errs = append(*errs, "Invalid "+field+" '"+raw+"'. Use a percentage between 0 and 100")
		return 0
	}
	return v
}
