package application

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/halcyon-rp/depthub/internal/domain/forms"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

func maxSeverity(a, b Severity) Severity {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}

type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail"`
	Blocking bool     `json:"blocking"`
}

type Analysis struct {
	IsClean        bool     `json:"is_clean"`
	Issues         []Issue  `json:"issues"`
	Severity       Severity `json:"severity"`
	BlockedReasons []string `json:"blocked_reasons"`
}

type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ModerationConfig carries the pattern lists. Deployments extend the slur
// list from their own configuration; the defaults here only seed the
// mechanism.
type ModerationConfig struct {
	SlurWords      []string
	ProfanityWords []string
	PromoPhrases   []string
	TrollPatterns  []string
}

func DefaultModerationConfig() ModerationConfig {
	return ModerationConfig{
		SlurWords: []string{
			"kys",
			"kill yourself",
		},
		ProfanityWords: []string{
			"fuck", "shit", "bitch", "asshole", "bastard", "dick", "cunt", "piss",
		},
		PromoPhrases: []string{
			"buy now", "click here", "free money", "limited offer", "act now", "dm me",
		},
		TrollPatterns: []string{
			`lorem\s+ipsum`,
			`\bplaceholder\b`,
			`(?:\btest\b[\s,.!]*){3,}`,
		},
	}
}

type ModerationService struct {
	slurs     []*regexp.Regexp
	profanity []*regexp.Regexp
	promo     []string
	troll     []*regexp.Regexp
	limiter   *RateLimiter
}

func NewModerationService(cfg ModerationConfig, limiter *RateLimiter) *ModerationService {
	s := &ModerationService{limiter: limiter}
	for _, w := range cfg.SlurWords {
		s.slurs = append(s.slurs, regexp.MustCompile(obfuscationPattern(w)))
	}
	for _, w := range cfg.ProfanityWords {
		s.profanity = append(s.profanity, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	s.promo = cfg.PromoPhrases
	for _, p := range cfg.TrollPatterns {
		s.troll = append(s.troll, regexp.MustCompile(`(?i)`+p))
	}
	return s
}

// Character classes tolerated in place of plain letters, so "sh1t" or
// "s.h.i.t" still match the configured word.
var obfuscationClasses = map[rune]string{
	'a': "[a@4]",
	'b': "[b8]",
	'e': "[e3]",
	'g': "[g9]",
	'i': "[i1!|]",
	'l': "[l1|]",
	'o': "[o0]",
	's': "[s5$z]",
	't': "[t7+]",
}

func obfuscationPattern(word string) string {
	var b strings.Builder
	b.WriteString(`(?i)`)
	first := true
	for _, r := range word {
		if r == ' ' {
			b.WriteString(`[\s\W_]+`)
			first = true
			continue
		}
		if !first {
			b.WriteString(`[\W_]*`)
		}
		if cls, ok := obfuscationClasses[unicode.ToLower(r)]; ok {
			b.WriteString(cls)
		} else {
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
		first = false
	}
	return b.String()
}

const (
	maxTextLength        = 10000
	charRunThreshold     = 20
	capsRatioThreshold   = 0.7
	capsMinLetters       = 15
	specialRatioLimit    = 0.4
	specialMinLength     = 20
	promoMinCooccurrence = 2
	profanityWarnCount   = 5
	profanityBlockCount  = 10
)

// Analyze runs every heuristic over the text and aggregates the findings.
// Severity is the maximum across all issues; BlockedReasons lists only the
// blocking ones.
func (s *ModerationService) Analyze(text string) Analysis {
	normalized := strings.ToLower(strings.TrimSpace(text))
	analysis := Analysis{IsClean: true, Severity: SeverityLow}

	add := func(issue Issue) {
		analysis.Issues = append(analysis.Issues, issue)
		analysis.IsClean = false
		analysis.Severity = maxSeverity(analysis.Severity, issue.Severity)
		if issue.Blocking {
			analysis.BlockedReasons = append(analysis.BlockedReasons, issue.Detail)
		}
	}

	for _, re := range s.slurs {
		if re.MatchString(normalized) {
			add(Issue{
				Rule:     "derogatory_term",
				Severity: SeverityCritical,
				Detail:   "content contains a derogatory or abusive term",
				Blocking: true,
			})
			break
		}
	}

	for _, detail := range s.spamFindings(text, normalized) {
		add(Issue{
			Rule:     "spam_pattern",
			Severity: SeverityHigh,
			Detail:   detail,
			Blocking: true,
		})
	}

	if n := s.profanityCount(normalized); n > profanityBlockCount {
		add(Issue{
			Rule:     "profanity",
			Severity: SeverityHigh,
			Detail:   fmt.Sprintf("excessive profanity (%d instances)", n),
			Blocking: true,
		})
	} else if n > profanityWarnCount {
		add(Issue{
			Rule:     "profanity",
			Severity: SeverityMedium,
			Detail:   fmt.Sprintf("high profanity count (%d instances)", n),
			Blocking: false,
		})
	}

	if len(text) > maxTextLength {
		add(Issue{
			Rule:     "length",
			Severity: SeverityMedium,
			Detail:   fmt.Sprintf("text exceeds %d characters", maxTextLength),
			Blocking: false,
		})
	}

	for _, re := range s.troll {
		if re.MatchString(normalized) {
			add(Issue{
				Rule:     "placeholder_content",
				Severity: SeverityMedium,
				Detail:   "content looks like placeholder or troll text",
				Blocking: false,
			})
			break
		}
	}

	return analysis
}

func (s *ModerationService) spamFindings(raw, normalized string) []string {
	var findings []string

	if hasCharRun(normalized, charRunThreshold) {
		findings = append(findings, "excessive character repetition")
	}

	letters, upper := 0, 0
	for _, r := range raw {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters >= capsMinLetters && float64(upper)/float64(letters) > capsRatioThreshold {
		findings = append(findings, "excessive capitalization")
	}

	if len(normalized) > specialMinLength {
		special := 0
		for _, r := range normalized {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
				special++
			}
		}
		if float64(special)/float64(len(normalized)) > specialRatioLimit {
			findings = append(findings, "excessive special characters")
		}
	}

	promoHits := 0
	for _, phrase := range s.promo {
		if strings.Contains(normalized, phrase) {
			promoHits++
		}
	}
	if promoHits >= promoMinCooccurrence {
		findings = append(findings, "promotional phrase co-occurrence")
	}

	return findings
}

func hasCharRun(s string, threshold int) bool {
	run := 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
			if run+1 >= threshold {
				return true
			}
		} else {
			run = 0
		}
		prev = r
	}
	return false
}

func (s *ModerationService) profanityCount(normalized string) int {
	total := 0
	for _, re := range s.profanity {
		total += len(re.FindAllStringIndex(normalized, -1))
	}
	return total
}

type ValidateContentInput struct {
	UserID  uint
	FormID  uint
	Answers []forms.Answer
}

// ValidateFormContent gates a submission: the rate limiter runs first, then
// every text-valued answer is analyzed. Any critical finding invalidates the
// submission regardless of other results; high findings become errors; lower
// severities are warnings only.
func (s *ModerationService) ValidateFormContent(input ValidateContentInput) ValidationResult {
	result := ValidationResult{IsValid: true}

	if s.limiter != nil {
		if violations := s.limiter.Check(input.UserID, input.FormID); len(violations) > 0 {
			result.Errors = append(result.Errors, violations...)
			result.IsValid = false
		}
	}

	for _, a := range input.Answers {
		text, ok := answerText(a.Value)
		if !ok || text == "" {
			continue
		}
		analysis := s.Analyze(text)
		for _, issue := range analysis.Issues {
			switch {
			case issue.Severity == SeverityCritical:
				result.Errors = append(result.Errors, issue.Detail)
				result.IsValid = false
			case issue.Severity == SeverityHigh && issue.Blocking:
				result.Errors = append(result.Errors, issue.Detail)
				result.IsValid = false
			default:
				result.Warnings = append(result.Warnings, issue.Detail)
			}
		}
	}

	return result
}

// answerText extracts comparable text from an answer value. Strings pass
// through, string lists are joined, booleans and anything else are skipped.
func answerText(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []string:
		return strings.Join(val, " "), true
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), true
	default:
		return "", false
	}
}
