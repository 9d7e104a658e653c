// Package discord adapts discordgo objects to the locale-reference
// capability interfaces of the localization package, so that guilds,
// interactions, and messages can be passed directly as the locale argument
// of a lookup. The localization core itself never imports discordgo.
package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/chatkit/localization"
)

// Guild wraps a discordgo guild as a locale reference resolving to the
// guild's preferred locale.
func Guild(g *discordgo.Guild) localization.Guild {
	return guildRef{g: g}
}

// Interaction wraps an interaction event as a locale reference resolving to
// the locale of the guild it was invoked in. Interactions outside a guild
// (DMs) resolve to the invoking user's locale instead.
func Interaction(i *discordgo.InteractionCreate) localization.Interaction {
	return interactionRef{i: i}
}

// Message wraps a message event as a locale reference resolving to the
// preferred locale of the guild it was sent in, looked up through the
// session state cache. Messages whose guild is not cached resolve to an
// empty tag, which sends the lookup to the store's default locale.
func Message(s *discordgo.Session, m *discordgo.MessageCreate) localization.Guild {
	return messageRef{s: s, m: m}
}

type guildRef struct {
	g *discordgo.Guild
}

func (r guildRef) PreferredLocale() string {
	if r.g == nil {
		return ""
	}
	return r.g.PreferredLocale
}

type interactionRef struct {
	i *discordgo.InteractionCreate
}

func (r interactionRef) Guild() localization.Guild {
	if r.i == nil || r.i.Interaction == nil {
		return nil
	}
	return interactionGuild{i: r.i.Interaction}
}

type interactionGuild struct {
	i *discordgo.Interaction
}

func (g interactionGuild) PreferredLocale() string {
	if g.i.GuildLocale != nil {
		return string(*g.i.GuildLocale)
	}
	return string(g.i.Locale)
}

type messageRef struct {
	s *discordgo.Session
	m *discordgo.MessageCreate
}

func (r messageRef) PreferredLocale() string {
	if r.s == nil || r.m == nil || r.m.GuildID == "" {
		return ""
	}
	g, err := r.s.State.Guild(r.m.GuildID)
	if err != nil {
		return ""
	}
	return g.PreferredLocale
}
