package county

import (
	"sort"
	"strings"

	"github.com/txsn/navigator/internal/platform/constants"
	"github.com/txsn/navigator/pkg/normalize"
)

// Mode selects how the caller supplied their county.
type Mode string

const (
	// ModePick means the county was chosen from the known county list.
	ModePick Mode = "pick"
	// ModeOther means the county was typed free-text, with the region chosen
	// separately from the region options.
	ModeOther Mode = "other"
)

// ParseMode normalizes a mode string, defaulting to [ModePick].
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeOther)) {
		return ModeOther
	}
	return ModePick
}

// Location holds the effective county/region pair actually used for matching.
// Empty strings mean "unknown": an empty region broadens matching to statewide.
type Location struct {
	County string `json:"county"`
	Region string `json:"region"`
	Zip    string `json:"zip,omitempty"`
}

// Resolve derives the effective location from user input.
//
// In pick mode the region comes from the county list; a county with no known
// region degrades to an empty region (statewide). In free-text mode the
// chosen region is passed through unless it is the Other/Unknown sentinel.
// There are no error conditions.
func Resolve(mode Mode, countyInput, regionInput string, counties []County) Location {
	loc := Location{County: strings.TrimSpace(countyInput)}

	switch mode {
	case ModeOther:
		region := strings.TrimSpace(regionInput)
		if region != constants.RegionOtherUnknown {
			loc.Region = region
		}
	default:
		for _, c := range counties {
			if normalize.Equal(c.CountyName, loc.County) {
				loc.Region = c.RegionName
				break
			}
		}
	}

	return loc
}

// RegionOptions returns the distinct non-empty region names sorted
// ascending, with the Other/Unknown sentinel always appended last as an
// escape hatch.
func RegionOptions(counties []County) []string {
	seen := make(map[string]struct{})
	var regions []string

	for _, c := range counties {
		region := strings.TrimSpace(c.RegionName)
		if region == "" {
			continue
		}
		if _, ok := seen[region]; ok {
			continue
		}
		seen[region] = struct{}{}
		regions = append(regions, region)
	}

	sort.Strings(regions)
	return append(regions, constants.RegionOtherUnknown)
}
