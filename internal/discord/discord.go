// Package discord connects the command router and result pager to a live
// Discord session via discordgo.
//
// The gateway is a thin adapter: it strips the command prefix, hands the
// text to the router, and translates the reply back into Discord messages.
// Search replies open a reaction-driven pager on the posted message; the
// paging state itself lives in the platform-neutral pager package.
package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"libbot/internal/formatter"
	"libbot/internal/models"
	"libbot/internal/pager"
	"libbot/internal/router"
	"libbot/internal/shared"
)

// The two paging controls, attached to every search-result message.
const (
	emojiPrev = "⬅️"
	emojiNext = "➡️"
)

// Bot wraps a discordgo session and routes inbound commands.
type Bot struct {
	session *discordgo.Session
	router  *router.Router
	logger  *log.Logger
	metrics *shared.Metrics
	timeout time.Duration

	mu    sync.Mutex
	pages map[string]chan pager.Input // message ID -> open pager inputs
}

// BotOpts contains configuration options for creating a [Bot].
type BotOpts struct {
	Token   string
	Router  *router.Router
	Logger  *log.Logger
	Metrics *shared.Metrics
	Timeout time.Duration // pager idle timeout, defaults to [pager.DefaultTimeout]
}

// NewBot creates a Bot with a configured but unopened Discord session.
func NewBot(opts BotOpts) (*Bot, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("%w: discord token", shared.ErrMissingCredentials)
	}
	if opts.Router == nil {
		return nil, fmt.Errorf("router is required")
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	opts.Logger = shared.WithLogger(opts.Logger, "component", "discord")
	if opts.Timeout <= 0 {
		opts.Timeout = pager.DefaultTimeout
	}

	session, err := discordgo.New("Bot " + opts.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	bot := &Bot{
		session: session,
		router:  opts.Router,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		timeout: opts.Timeout,
		pages:   make(map[string]chan pager.Input),
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onReactionAdd)

	return bot, nil
}

// Start opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	<-ctx.Done()
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("logged in", "user", r.User.Username)
}

// onMessageCreate handles one inbound command end to end. Failures are
// contained here: nothing a single command does can take down the handler.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	text, ok := router.ExtractCommand(m.Content)
	if !ok {
		return
	}

	reply := b.router.Execute(context.Background(), m.Author.ID, text)

	switch {
	case reply.StartsPager():
		b.startPager(m.ChannelID, m.Author.ID, reply)
	case len(reply.Embeds) > 0:
		for _, e := range reply.Embeds {
			if _, err := s.ChannelMessageSendEmbed(m.ChannelID, toMessageEmbed(e)); err != nil {
				b.logger.Error("failed to send embed", "channel", m.ChannelID, "error", err)
				return
			}
			b.metrics.IncReply()
		}
	case reply.Text != "":
		if _, err := s.ChannelMessageSend(m.ChannelID, reply.Text); err != nil {
			b.logger.Error("failed to send reply", "channel", m.ChannelID, "error", err)
			return
		}
		b.metrics.IncReply()
	}
}

// onReactionAdd feeds qualifying reactions into the pager session attached
// to the reacted message, if one is open. Everything else is ignored.
func (b *Bot) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}

	var direction pager.Direction
	switch r.Emoji.Name {
	case emojiPrev:
		direction = pager.Prev
	case emojiNext:
		direction = pager.Next
	default:
		return
	}

	b.mu.Lock()
	inputs, ok := b.pages[r.MessageID]
	b.mu.Unlock()
	if !ok {
		return
	}

	// Drop rather than block if the pager is mid-render.
	select {
	case inputs <- pager.Input{UserID: r.UserID, Direction: direction}:
	default:
	}
}

// startPager posts the first result, arms the paging controls and runs the
// session until it times out. Each search gets an independent session on its
// own message; prior open sessions are unaffected.
func (b *Bot) startPager(channelID, ownerID string, reply *router.Reply) {
	session := pager.NewSession(ownerID, reply.Pager)

	first := formatter.Book(session.Current())
	msg, err := b.session.ChannelMessageSendEmbed(channelID, toMessageEmbed(first))
	if err != nil {
		b.logger.Error("failed to post search result", "channel", channelID, "error", err)
		return
	}
	b.metrics.IncReply()

	renderer := &messageRenderer{bot: b, channelID: channelID, messageID: msg.ID}
	if err := renderer.arm(); err != nil {
		b.logger.Warn("failed to arm paging controls", "message", msg.ID, "error", err)
	}

	inputs := make(chan pager.Input, 8)
	b.mu.Lock()
	b.pages[msg.ID] = inputs
	b.mu.Unlock()

	go func() {
		defer func() {
			b.mu.Lock()
			delete(b.pages, msg.ID)
			b.mu.Unlock()
		}()

		if err := pager.Run(context.Background(), session, inputs, renderer, b.timeout); err != nil {
			b.logger.Warn("pager session ended with error", "message", msg.ID, "error", err)
		}
	}()
}

// messageRenderer edits one posted message in place and re-arms its
// reaction controls, implementing [pager.Renderer].
type messageRenderer struct {
	bot       *Bot
	channelID string
	messageID string
}

func (r *messageRenderer) Render(ctx context.Context, book models.Book, index, total int) error {
	s := r.bot.session

	if err := s.MessageReactionsRemoveAll(r.channelID, r.messageID); err != nil {
		return fmt.Errorf("failed to clear reactions: %w", err)
	}

	embed := toMessageEmbed(formatter.Book(book))
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d of %d", index+1, total)}
	if _, err := s.ChannelMessageEditEmbed(r.channelID, r.messageID, embed); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return r.arm()
}

// Close withdraws the paging controls. Timeouts are silent: the message
// itself stays as-is.
func (r *messageRenderer) Close(ctx context.Context) error {
	if err := r.bot.session.MessageReactionsRemoveAll(r.channelID, r.messageID); err != nil {
		return fmt.Errorf("failed to clear reactions: %w", err)
	}
	return nil
}

// arm attaches the two directional reactions.
func (r *messageRenderer) arm() error {
	for _, emoji := range []string{emojiPrev, emojiNext} {
		if err := r.bot.session.MessageReactionAdd(r.channelID, r.messageID, emoji); err != nil {
			return fmt.Errorf("failed to add reaction %s: %w", emoji, err)
		}
	}
	return nil
}

// toMessageEmbed maps a platform-neutral embed onto a discordgo embed.
func toMessageEmbed(e formatter.Embed) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		URL:         e.URL,
		Description: e.Description,
		Color:       formatter.EmbedColor,
	}

	if e.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}

	for _, f := range e.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	return embed
}
