package country

import (
	"regexp"
	"strings"

	"companyscrapper/data"
)

// contextWords must immediately precede a country name for the stage-4
// match to count.
const contextWords = `(?:in|from|based in|located in|headquartered in|an?)`

var (
	// mentionPatterns holds one word-boundary pattern per allow-listed
	// country, plus one per known alias (alias patterns resolve to the
	// canonical name).
	mentionPatterns = make(map[string]*regexp.Regexp, len(data.AfricanCountries))
	aliasPatterns   = make(map[string]*regexp.Regexp, len(data.CountryAliases))
	contextPatterns = make(map[string]*regexp.Regexp, len(data.AfricanCountries))
	reverseDemonyms = make(map[string]string, len(data.AfricanDemonyms))
)

func init() {
	for _, c := range data.AfricanCountries {
		name := regexp.QuoteMeta(strings.ToLower(c))
		mentionPatterns[c] = regexp.MustCompile(`\b` + name + `\b`)
		contextPatterns[c] = regexp.MustCompile(`\b` + contextWords + `\s+` + name + `\b`)
	}
	for alias := range data.CountryAliases {
		aliasPatterns[alias] = regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`)
	}
	for c, demonym := range data.AfricanDemonyms {
		reverseDemonyms[strings.ToLower(demonym)] = c
	}
}

// FromStructuredFields is stage 1: location recognition over the
// headquarters/country profile fields. Returns "" when the fields are
// absent or name no allow-listed country.
func FromStructuredFields(fields map[string]string) string {
	for _, key := range structuredFieldKeys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if c := RecognizeCountry(value); c != "" {
			return c
		}
	}
	return ""
}

// RecognizeCountry returns the allow-listed country whose name (or alias)
// appears earliest in text, or "". Names starting at the same index are
// resolved to the longest match, so "Guinea-Bissau" is never truncated to
// its "Guinea" prefix.
func RecognizeCountry(text string) string {
	lower := strings.ToLower(text)

	best := ""
	bestIdx := len(lower) + 1
	bestLen := 0
	for _, c := range data.AfricanCountries {
		loc := mentionPatterns[c].FindStringIndex(lower)
		if loc == nil {
			continue
		}
		if loc[0] < bestIdx || (loc[0] == bestIdx && loc[1]-loc[0] > bestLen) {
			best, bestIdx, bestLen = c, loc[0], loc[1]-loc[0]
		}
	}
	for alias, pattern := range aliasPatterns {
		loc := pattern.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		if loc[0] < bestIdx || (loc[0] == bestIdx && loc[1]-loc[0] > bestLen) {
			best, bestIdx, bestLen = data.CountryAliases[alias], loc[0], loc[1]-loc[0]
		}
	}
	return best
}

// MostMentionedCountry is stage 2: word-boundary mention counting over the
// combined snippet text. The strictly highest count wins; equal counts fall
// back to allow-list order (the documented tie-break).
func MostMentionedCountry(text string) string {
	lower := strings.ToLower(text)

	best := ""
	bestCount := 0
	for _, c := range data.AfricanCountries {
		if n := len(mentionPatterns[c].FindAllString(lower, -1)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// FromDemonyms is stage 3: nationality-adjective matching mapped back to
// the country through the reverse demonym table.
func FromDemonyms(text string) string {
	lower := strings.ToLower(text)
	for _, c := range data.AfricanCountries {
		demonym := strings.ToLower(data.AfricanDemonyms[c])
		if demonym != "" && strings.Contains(lower, demonym) {
			return reverseDemonyms[demonym]
		}
	}
	return ""
}

// FromContextualMention is stage 4: a country name counts only when it
// directly follows a contextual word (in/from/based in/...).
func FromContextualMention(text string) string {
	lower := strings.ToLower(text)
	for _, c := range data.AfricanCountries {
		if contextPatterns[c].MatchString(lower) {
			return c
		}
	}
	return ""
}
