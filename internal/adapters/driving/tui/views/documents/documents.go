// Package documents provides the uploaded documents view for the TUI.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/components/input"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/keymap"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/messages"
	"github.com/askpdf-labs/askpdf-cli/internal/adapters/driving/tui/styles"
	"github.com/askpdf-labs/askpdf-cli/internal/core/domain"
	"github.com/askpdf-labs/askpdf-cli/internal/core/ports/driving"
)

// Mode represents the view's interaction mode.
type Mode int

const (
	// ModeList is plain list navigation.
	ModeList Mode = iota
	// ModeUpload shows the upload path prompt.
	ModeUpload
	// ModeConfirmDelete shows the delete confirmation.
	ModeConfirmDelete
)

// View is the uploaded documents view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.Field

	registry driving.RegistryService
	upload   driving.UploadService
	ctx      context.Context

	records      []domain.DocumentRecord
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
	uploading    bool
	mode         Mode
}

// NewView creates a new documents view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	registry driving.RegistryService,
	upload driving.UploadService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	field := input.New(s, "Path: ", "Path to a PDF file...")
	field.Blur()

	return &View{
		styles:   s,
		keymap:   km,
		input:    field,
		registry: registry,
		upload:   upload,
		ctx:      context.Background(),
		records:  []domain.DocumentRecord{},
		width:    80,
		height:   24,
		mode:     ModeList,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the document list.
func (v *View) Init() tea.Cmd {
	return v.refresh()
}

// refresh returns a command that re-fetches the document list.
func (v *View) refresh() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.registry == nil {
			return messages.DocumentsRefreshed{Err: fmt.Errorf("registry service not available")}
		}

		err := v.registry.Refresh(v.ctx)
		return messages.DocumentsRefreshed{Err: err}
	}
}

// remove returns a command that deletes a document and refreshes.
func (v *View) remove(name string) tea.Cmd {
	return func() tea.Msg {
		if v.registry == nil {
			return messages.DocumentRemoved{Name: name, Err: fmt.Errorf("registry service not available")}
		}

		err := v.registry.Remove(v.ctx, name)
		return messages.DocumentRemoved{Name: name, Err: err}
	}
}

// uploadPath returns a command that uploads one file.
func (v *View) uploadPath(path string) tea.Cmd {
	v.uploading = true
	return func() tea.Msg {
		if v.upload == nil {
			return messages.UploadCompleted{Err: fmt.Errorf("upload service not available")}
		}

		v.upload.Select([]string{path})
		result, err := v.upload.Upload(v.ctx)
		return messages.UploadCompleted{Result: result, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case ModeUpload:
			return v.handleUploadKeyMsg(msg)
		case ModeConfirmDelete:
			return v.handleConfirmKeyMsg(msg)
		default:
			return v.handleListKeyMsg(msg)
		}

	case messages.DocumentsRefreshed:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			v.reloadRecords()
		}
		return v, nil

	case messages.DocumentRemoved:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			v.reloadRecords()
		}
		return v, nil

	case messages.UploadCompleted:
		v.uploading = false
		v.mode = ModeList
		v.input.Reset()
		v.input.Blur()
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			v.reloadRecords()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	if v.mode == ModeUpload {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	return v, nil
}

// handleListKeyMsg handles key presses in list mode.
func (v *View) handleListKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.records)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "r":
		return v, v.refresh()
	case "u":
		v.mode = ModeUpload
		v.err = nil
		return v, v.input.Focus()
	case "d":
		if len(v.records) > 0 {
			v.mode = ModeConfirmDelete
		}
	case "esc":
		v.err = nil
	}

	return v, nil
}

// handleUploadKeyMsg handles key presses while the upload prompt is open.
func (v *View) handleUploadKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		path := strings.TrimSpace(v.input.Value())
		if path == "" || v.uploading {
			return v, nil
		}
		return v, v.uploadPath(path)
	case tea.KeyEsc:
		v.mode = ModeList
		v.input.Reset()
		v.input.Blur()
		return v, nil
	default:
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
}

// handleConfirmKeyMsg handles key presses while the delete confirmation
// is open.
func (v *View) handleConfirmKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		record := v.SelectedRecord()
		v.mode = ModeList
		if record == nil {
			return v, nil
		}
		return v, v.remove(record.Name)
	case "n", "esc":
		v.mode = ModeList
	}

	return v, nil
}

// reloadRecords re-reads the registry mirror and clamps the selection.
func (v *View) reloadRecords() {
	if v.registry == nil {
		return
	}
	v.records = v.registry.Records()
	if v.selected >= len(v.records) {
		v.selected = len(v.records) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
	v.adjustScroll()
}

// adjustScroll keeps the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the documents view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := fmt.Sprintf("Documents (%d)", len(v.records))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.mode == ModeUpload {
		b.WriteString(v.renderUploadPrompt())
		return b.String()
	}

	if v.mode == ModeConfirmDelete {
		b.WriteString(v.renderConfirmDelete())
		return b.String()
	}

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Refreshing file list..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if len(v.records) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents uploaded. Press u to upload a PDF."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.records) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderRecord(i, &v.records[i]))
		b.WriteString("\n")
	}

	if len(v.records) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.records)),
			len(v.records))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderRecord renders a single document line.
func (v *View) renderRecord(index int, record *domain.DocumentRecord) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := record.Name
	maxNameLen := v.width/2 - 4
	if maxNameLen < 12 {
		maxNameLen = 12
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	size := record.SizeLabel()
	expiry := record.ExpiryLabel()

	if index == v.selected {
		line := fmt.Sprintf("%s%-*s  %8s", indicator, maxNameLen, name, size)
		if expiry != "" {
			line += "   " + expiry
		}
		return v.styles.Selected.Render(line)
	}

	line := v.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, name)) +
		v.styles.Normal.Render(fmt.Sprintf("%8s", size))
	if expiry != "" {
		line += v.styles.Muted.Render("   " + expiry)
	}
	return line
}

// renderUploadPrompt renders the upload path prompt.
func (v *View) renderUploadPrompt() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Upload a PDF"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	if v.uploading {
		b.WriteString(v.styles.Muted.Render("Uploading..."))
		b.WriteString("\n\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[enter] upload  [esc] cancel"))

	return b.String()
}

// renderConfirmDelete renders the delete confirmation.
func (v *View) renderConfirmDelete() string {
	record := v.SelectedRecord()
	if record == nil {
		return v.renderHelp()
	}

	var b strings.Builder
	b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Delete %q? The service copy is removed permanently.", record.Name)))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[y] delete  [esc] cancel"))

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [u] upload  [d] delete  [r] refresh  [tab] chat")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
}

// Records returns the current document list.
func (v *View) Records() []domain.DocumentRecord {
	return v.records
}

// SelectedIndex returns the currently selected index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedRecord returns the currently selected document.
func (v *View) SelectedRecord() *domain.DocumentRecord {
	if v.selected < len(v.records) {
		return &v.records[v.selected]
	}
	return nil
}

// CurrentMode returns the interaction mode.
func (v *View) CurrentMode() Mode {
	return v.mode
}

// Loading returns true while a refresh is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Uploading returns true while an upload is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
