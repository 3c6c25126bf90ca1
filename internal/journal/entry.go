package journal

import (
	"fmt"
	"sort"
	"strings"

	"depthjournal/internal/media"
)

// EmotionTag is one felt emotion and how strongly it was felt, 0-10.
type EmotionTag struct {
	Name      string `json:"name"`
	Intensity int    `json:"intensity"`
}

// emotionNames is the fixed vocabulary of emotions an entry may carry.
var emotionNames = map[string]bool{
	"Joy":        true,
	"Sadness":    true,
	"Anger":      true,
	"Fear":       true,
	"Love":       true,
	"Anxiety":    true,
	"Peace":      true,
	"Excitement": true,
}

// EmotionNames returns the allowed emotion vocabulary in a stable order.
func EmotionNames() []string {
	names := make([]string, 0, len(emotionNames))
	for n := range emotionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SensoryNote captures what each of the five senses registered.
// Absence is an empty string; the five fields are always present
// in the serialized form.
type SensoryNote struct {
	Visual    string `json:"visual"`
	Auditory  string `json:"auditory"`
	Tactile   string `json:"tactile"`
	Olfactory string `json:"olfactory"`
	Gustatory string `json:"gustatory"`
}

// Fields returns the five sensory values in their canonical order.
func (n SensoryNote) Fields() [5]string {
	return [5]string{n.Visual, n.Auditory, n.Tactile, n.Olfactory, n.Gustatory}
}

// filledCount counts fields with non-whitespace content.
func (n SensoryNote) filledCount() int {
	count := 0
	for _, v := range n.Fields() {
		if strings.TrimSpace(v) != "" {
			count++
		}
	}
	return count
}

// Entry is one immutable journal record. RelevanceScore is frozen at save
// time and never recomputed; the only supported mutation is deletion.
type Entry struct {
	ID             int64        `json:"id"`
	UserID         string       `json:"user_id"`
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	Emotions       []EmotionTag `json:"emotions"`
	Sensory        SensoryNote  `json:"sensory"`
	Media          *media.Asset `json:"media,omitempty"`
	CreatedAt      string       `json:"created_at"`
	RelevanceScore float64      `json:"relevance_score"`
}

// User identifies the journaling owner. This is an identification token
// derived from an email, not an authentication boundary.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserIDFromEmail derives a stable user identifier: the email lower-cased
// with every non-alphanumeric rune replaced by a hyphen.
func UserIDFromEmail(email string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(email) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ValidUserID reports whether an identifier is inside the alphabet
// UserIDFromEmail produces: [a-z0-9-], non-empty. Anything else would
// break the entry:{userID}:{id} key namespacing in the store.
func ValidUserID(userID string) bool {
	if userID == "" {
		return false
	}
	for _, r := range userID {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// NewUser validates an email and derives the User for it. The only check
// is the presence of an '@'; there is no credential verification.
func NewUser(email string) (User, error) {
	if !strings.Contains(email, "@") {
		return User{}, &ValidationError{Field: "email", Reason: "must contain @"}
	}
	return User{ID: UserIDFromEmail(email), Email: email}, nil
}

// ValidationError reports a draft or email that cannot be persisted.
// It is raised before any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Draft is the mutable form state the presentation layer accumulates.
// It crosses into the core exactly once, at save time, via Validate.
type Draft struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Emotions []EmotionTag `json:"emotions"`
	Sensory  SensoryNote  `json:"sensory"`
	Media    *media.Asset `json:"media,omitempty"`
}

// Validate checks the draft against the persistence rules: title, content
// and media are all required, and emotion names must come from the fixed
// vocabulary. Returns the normalized emotion set (clamped to 0-10, zero
// intensities dropped, unique by name with the last value winning).
func (d Draft) Validate() ([]EmotionTag, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(d.Content) == "" {
		return nil, &ValidationError{Field: "content", Reason: "required"}
	}
	if d.Media == nil {
		return nil, &ValidationError{Field: "media", Reason: "attachment required"}
	}
	return normalizeEmotions(d.Emotions)
}

// normalizeEmotions clamps intensities to [0,10], deduplicates by name
// (last value wins) and drops zero-intensity tags so they are never
// persisted. Order of surviving tags follows first appearance.
func normalizeEmotions(tags []EmotionTag) ([]EmotionTag, error) {
	byName := make(map[string]int, len(tags))
	var order []string
	for _, tag := range tags {
		if !emotionNames[tag.Name] {
			return nil, &ValidationError{Field: "emotions", Reason: fmt.Sprintf("unknown emotion %q", tag.Name)}
		}
		intensity := tag.Intensity
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 10 {
			intensity = 10
		}
		if _, seen := byName[tag.Name]; !seen {
			order = append(order, tag.Name)
		}
		byName[tag.Name] = intensity
	}

	var out []EmotionTag
	for _, name := range order {
		if byName[name] > 0 {
			out = append(out, EmotionTag{Name: name, Intensity: byName[name]})
		}
	}
	return out, nil
}
