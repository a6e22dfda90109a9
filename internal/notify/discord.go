package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// messageSender is the part of *discordgo.Session the dispatcher uses.
type messageSender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordDispatcher posts messages to a Discord channel through the REST API.
type DiscordDispatcher struct {
	session   messageSender
	channelID string
}

// NewDiscordDispatcher creates a dispatcher authenticated with a bot token.
// No gateway connection is opened.
func NewDiscordDispatcher(botToken, channelID string) (*DiscordDispatcher, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordDispatcher{session: session, channelID: channelID}, nil
}

// FormatDiscord renders a message as Discord markdown.
func FormatDiscord(msg Message) string {
	return fmt.Sprintf("**%s**\n%s", msg.Title, msg.Body)
}

// Dispatch implements Dispatcher.
func (d *DiscordDispatcher) Dispatch(ctx context.Context, msg Message) error {
	if _, err := d.session.ChannelMessageSend(d.channelID, FormatDiscord(msg), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post notification %s to discord: %w", msg.NotificationID, err)
	}
	return nil
}
