// Package convlist provides a navigable conversation list component for the TUI.
package convlist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// ConversationList displays conversations in a navigable list.
type ConversationList struct {
	conversations []domain.Conversation
	selected      int
	styles        *styles.Styles
	width         int
	height        int
}

// NewConversationList creates a new conversation list component.
func NewConversationList(s *styles.Styles) *ConversationList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ConversationList{
		conversations: nil,
		selected:      0,
		styles:        s,
		width:         80,
		height:        10,
	}
}

// Init initialises the conversation list.
func (c *ConversationList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *ConversationList) Update(msg tea.Msg) (*ConversationList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			c.MoveUp()
		case tea.KeyDown:
			c.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			c.MoveUp()
		case "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the conversation list.
func (c *ConversationList) View() string {
	if len(c.conversations) == 0 {
		return c.styles.Muted.Render("No conversations yet")
	}

	lines := make([]string, 0, len(c.conversations)*2+2)

	header := c.styles.Subtitle.Render(fmt.Sprintf("Conversations (%d)", len(c.conversations)))
	lines = append(lines, header, "")

	// Each conversation takes two lines (title + detail)
	visibleCount := (c.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if c.selected >= visibleCount {
		start = c.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(c.conversations) {
		end = len(c.conversations)
	}

	for i := start; i < end; i++ {
		lines = append(lines, c.renderConversation(i, &c.conversations[i]))
	}

	return strings.Join(lines, "\n")
}

// renderConversation formats a single conversation entry.
func (c *ConversationList) renderConversation(index int, conv *domain.Conversation) string {
	indicator := "  "
	if index == c.selected {
		indicator = "> "
	}

	title := conv.Title
	if title == "" {
		title = domain.DefaultConversationTitle
	}

	maxTitleLen := c.width - 10
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	var titleLine string
	if index == c.selected {
		titleLine = c.styles.Selected.Render(indicator + title)
	} else {
		titleLine = c.styles.Normal.Render(indicator + title)
	}

	detail := fmt.Sprintf("    %d messages, updated %s",
		len(conv.Messages),
		conv.UpdatedAt.Format("2006-01-02 15:04"))

	return titleLine + "\n" + c.styles.Muted.Render(detail)
}

// SetConversations updates the list contents.
func (c *ConversationList) SetConversations(conversations []domain.Conversation) {
	c.conversations = conversations
	if c.selected >= len(conversations) {
		c.selected = 0
	}
}

// Conversations returns the current conversations.
func (c *ConversationList) Conversations() []domain.Conversation {
	return c.conversations
}

// Selected returns the index of the selected conversation.
func (c *ConversationList) Selected() int {
	return c.selected
}

// SetSelected sets the selected index.
func (c *ConversationList) SetSelected(index int) {
	if index >= 0 && index < len(c.conversations) {
		c.selected = index
	}
}

// SelectedConversation returns the currently selected conversation, or nil if none.
func (c *ConversationList) SelectedConversation() *domain.Conversation {
	if len(c.conversations) == 0 || c.selected < 0 || c.selected >= len(c.conversations) {
		return nil
	}
	return &c.conversations[c.selected]
}

// MoveUp moves selection up.
func (c *ConversationList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *ConversationList) MoveDown() {
	if c.selected < len(c.conversations)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *ConversationList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Width returns the current width.
func (c *ConversationList) Width() int {
	return c.width
}

// Height returns the current height.
func (c *ConversationList) Height() int {
	return c.height
}

// Count returns the number of conversations.
func (c *ConversationList) Count() int {
	return len(c.conversations)
}

// IsEmpty returns whether the list is empty.
func (c *ConversationList) IsEmpty() bool {
	return len(c.conversations) == 0
}
