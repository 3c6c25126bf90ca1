package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"depthjournal/internal/engine"
	"depthjournal/internal/journal"
	"depthjournal/internal/media"
	"depthjournal/internal/ui"
)

var newFlags struct {
	title     string
	content   string
	emotions  []string
	visual    string
	auditory  string
	tactile   string
	olfactory string
	gustatory string
	mediaPath string
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Record a new journal entry",
	Long: "Record an immutable journal entry for the signed-in user. Title, content\n" +
		"and a media attachment are required. Emotions take the form Name=Intensity\n" +
		"with intensity 0-10; valid names: " + strings.Join(journal.EmotionNames(), ", ") + ".",
	RunE: runNew,
}

func init() {
	f := newCmd.Flags()
	f.StringVarP(&newFlags.title, "title", "t", "", "entry title (required)")
	f.StringVarP(&newFlags.content, "content", "c", "", "what happened, how it felt (required)")
	f.StringArrayVarP(&newFlags.emotions, "emotion", "e", nil, "emotion as Name=Intensity, repeatable")
	f.StringVar(&newFlags.visual, "visual", "", "what you saw")
	f.StringVar(&newFlags.auditory, "auditory", "", "what you heard")
	f.StringVar(&newFlags.tactile, "tactile", "", "what you felt")
	f.StringVar(&newFlags.olfactory, "olfactory", "", "what you smelled")
	f.StringVar(&newFlags.gustatory, "gustatory", "", "what you tasted")
	f.StringVarP(&newFlags.mediaPath, "media", "m", "", "path to a photo, video or audio file (required, max 5MiB)")
}

func parseEmotionFlag(raw string) (journal.EmotionTag, error) {
	name, value, found := strings.Cut(raw, "=")
	if !found {
		return journal.EmotionTag{}, fmt.Errorf("emotion %q: want Name=Intensity", raw)
	}
	intensity, err := strconv.Atoi(value)
	if err != nil {
		return journal.EmotionTag{}, fmt.Errorf("emotion %q: intensity must be an integer", raw)
	}
	return journal.EmotionTag{Name: name, Intensity: intensity}, nil
}

// loadMedia reads the whole file into memory before handing it to the
// codec, so Encode never sees partial data.
func loadMedia(path string) (*media.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read media file: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	return media.Encode(data, mimeType, filepath.Base(path))
}

func requireUser(eng *engine.Engine) (*journal.User, error) {
	u, err := eng.CurrentUser()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("nobody is signed in; run `depthjournal signin <email>` first")
	}
	return u, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	eng, closeDB, err := openEngine()
	if err != nil {
		return err
	}
	defer closeDB()

	u, err := requireUser(eng)
	if err != nil {
		return err
	}

	draft := journal.Draft{
		Title:   newFlags.title,
		Content: newFlags.content,
		Sensory: journal.SensoryNote{
			Visual:    newFlags.visual,
			Auditory:  newFlags.auditory,
			Tactile:   newFlags.tactile,
			Olfactory: newFlags.olfactory,
			Gustatory: newFlags.gustatory,
		},
	}
	for _, raw := range newFlags.emotions {
		tag, err := parseEmotionFlag(raw)
		if err != nil {
			return err
		}
		draft.Emotions = append(draft.Emotions, tag)
	}
	if newFlags.mediaPath != "" {
		asset, err := loadMedia(newFlags.mediaPath)
		if err != nil {
			return err
		}
		draft.Media = asset
	}

	entry, err := eng.CreateEntry(u.ID, draft)
	if err != nil {
		return err
	}

	fmt.Println(ui.StyleSuccess.Render(fmt.Sprintf("saved entry %d", entry.ID)))
	fmt.Println(ui.RenderKeyValue("relevance", fmt.Sprintf("%.1f", entry.RelevanceScore)))
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries ranked by relevance score",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()

		u, err := requireUser(eng)
		if err != nil {
			return err
		}

		entries, decodeErrs, err := eng.ListRanked(u.ID)
		if err != nil {
			return err
		}
		for _, derr := range decodeErrs {
			fmt.Fprintln(os.Stderr, ui.StyleError.Render(derr.Error()))
		}

		if len(entries) == 0 {
			fmt.Println(ui.StyleMuted.Render("no entries yet"))
			return nil
		}

		table := ui.NewTable([]ui.TableColumn{
			{Header: "SCORE", Width: 6, Align: "right"},
			{Header: "ID", Width: 13},
			{Header: "DATE", Width: 10},
			{Header: "TITLE", Width: 20},
			{Header: "EMOTIONS"},
			{Header: "MEDIA"},
		})
		for _, e := range entries {
			table.AddRow([]string{
				fmt.Sprintf("%.1f", e.RelevanceScore),
				strconv.FormatInt(e.ID, 10),
				formatDate(e.CreatedAt),
				e.Title,
				formatEmotions(e.Emotions),
				formatMedia(e.Media),
			})
		}
		fmt.Print(table.Render())
		return nil
	},
}

func formatDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("2006-01-02")
}

func formatEmotions(tags []journal.EmotionTag) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf("%s(%d)", tag.Name, tag.Intensity))
	}
	return strings.Join(parts, " ")
}

func formatMedia(asset *media.Asset) string {
	if asset == nil {
		return "-"
	}
	return string(asset.Kind)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("entry id must be an integer: %q", args[0])
		}

		eng, closeDB, err := openEngine()
		if err != nil {
			return err
		}
		defer closeDB()

		u, err := requireUser(eng)
		if err != nil {
			return err
		}

		if err := eng.DeleteEntry(u.ID, id); err != nil {
			return err
		}
		fmt.Printf("deleted entry %d\n", id)
		return nil
	},
}
