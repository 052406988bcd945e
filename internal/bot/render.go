package bot

import (
	"fmt"
	"html"
	"numberbot/pkg/domain"
	"numberbot/pkg/telegram"
	"strings"
	"time"
)

// NotAvailable is shown for fields a provider did not return.
const NotAvailable = "ɴᴏᴛ ᴀᴠᴀɪʟᴀʙʟᴇ"

// CheckMembershipData is the callback payload of the "check membership" button.
const CheckMembershipData = "check_membership"

var smallCaps = func() map[rune]rune {
	const lower = "abcdefghijklmnopqrstuvwxyz"
	styled := []rune("ᴀʙᴄᴅᴇꜰɢʜɪᴊᴋʟᴍɴᴏᴘǫʀꜱᴛᴜᴠᴡxʏᴢ")

	m := make(map[rune]rune, 2*len(lower))
	for i, r := range lower {
		m[r] = styled[i]
		m[r-'a'+'A'] = styled[i]
	}

	return m
}()

// Stylize rewrites latin letters as small caps. Everything else is kept.
func Stylize(s string) string {
	return strings.Map(func(r rune) rune {
		if styled, ok := smallCaps[r]; ok {
			return styled
		}

		return r
	}, s)
}

// renderer builds every message the bot sends.
type renderer struct {
	countryName string
	format      func(domain.PhoneNumber) string
}

func (r renderer) welcome(firstName string, gated bool) string {
	var b strings.Builder
	b.WriteString(Stylize(fmt.Sprintf("🎉 Welcome %s!\n\n", firstName)))
	b.WriteString(Stylize("🔍 I can help you find phone number details just like Truecaller!\n\n"))
	if gated {
		b.WriteString(Stylize("⚠️ To use this bot, you must join our channels first:"))

		return html.EscapeString(b.String())
	}

	b.WriteString(Stylize("📱 Just send me a phone number and I'll provide:\n" +
		"• Name (if available)\n• Location\n• Carrier\n• Line Type\n• Validation Status\n• Timezone\n\n"))
	b.WriteString(Stylize("📝 Format: 98xxxxxxxx or +919xxxxxxxx\n\n"))
	b.WriteString(Stylize("💡 Example: ") + "9876543210")

	return html.EscapeString(b.String())
}

func (r renderer) help() string {
	return "ℹ️ <b>How to use this bot:</b>\n\n" +
		"• <b>Send any Indian phone number</b> to get details.\n" +
		"• <b>/start</b>: show the welcome message.\n" +
		"• <b>/me</b>: show your lookups and channel membership.\n" +
		"• <b>/stats</b>: show bot statistics (owner only).\n\n" +
		"Join our channels for updates!"
}

func (r renderer) joinPrompt(links []domain.JoinLink) telegram.Message {
	return telegram.Message{
		Text:    Stylize("⚠️ Please join our channels first to use the bot:"),
		Buttons: joinKeyboard(links),
	}
}

func (r renderer) stillGated(links []domain.JoinLink) telegram.Message {
	return telegram.Message{
		Text:    Stylize("❌ Please join all channels first"),
		Buttons: joinKeyboard(links),
	}
}

func (r renderer) membershipVerified() string {
	return Stylize("✅ Thank you for joining!\n\n🔍 Now you can use the bot\n📱 Just send me a phone number!\n\n💡 Example: ") +
		"9876543210"
}

func (r renderer) invalidNumber(reason string) string {
	return Stylize("❌ Invalid number format\n\n🔍 Error: ") + html.EscapeString(reason) + "\n\n" +
		Stylize("📝 Correct format:\n") + "• 9876543210\n• +919876543210\n\n" +
		Stylize("📱 Please send a valid Indian phone number")
}

func (r renderer) processing() string {
	return Stylize("🔍 Fetching details... ⏳")
}

func (r renderer) exhausted() string {
	return Stylize("❌ All API keys exhausted or limit exceeded.\n\n🔑 Please try again later or contact the owner.")
}

func (r renderer) failed() string {
	return Stylize("❌ Error fetching details\n\n🔄 Please try again later")
}

func (r renderer) minuteLimited() string {
	return Stylize("⏳ Too many lookups. Please wait a minute and try again.")
}

func (r renderer) dailyLimited() string {
	return Stylize("📅 You have reached today's lookup limit. Please come back tomorrow.")
}

func (r renderer) unauthorized() string {
	return Stylize("❌ You are unauthorized")
}

func (r renderer) stats(s domain.Stats) string {
	return fmt.Sprintf("📊 <b>%s</b>\n\n"+
		"👥 %s: <code>%d</code>\n"+
		"🔍 %s: <code>%d</code>\n"+
		"📅 %s: <code>%s</code>\n"+
		"🔑 %s: <code>%d</code>\n"+
		"🔄 %s: <code>%d</code>",
		Stylize("Bot Statistics"),
		Stylize("Total users"), s.TotalUsers,
		Stylize("Today's queries"), s.TodayQueries,
		Stylize("Date"), s.Date,
		Stylize("Access keys loaded"), s.Keys,
		Stylize("Current key index"), s.KeyCursor)
}

func (r renderer) me(s telegram.Sender, record *domain.UserRecord, decisions []domain.ChannelDecision) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 <b>%s</b>\n\n🆔 %s: <code>%d</code>\n", Stylize("Your Account"), Stylize("ID"), s.ID)
	if record != nil {
		fmt.Fprintf(&b, "🔍 %s: <code>%d</code>\n📅 %s: <code>%s</code>\n",
			Stylize("Lookups"), record.QueryCount,
			Stylize("First seen"), record.FirstSeenAt.Format(time.DateOnly))
	}

	if len(decisions) > 0 {
		b.WriteString("\n📢 <b>" + Stylize("Channels") + "</b>\n")
		for _, cd := range decisions {
			fmt.Fprintf(&b, "%s %s\n", decisionMark(cd.Decision), html.EscapeString(cd.Channel.Name))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func decisionMark(d domain.MembershipDecision) string {
	switch d {
	case domain.DecisionMember:
		return "✅"
	case domain.DecisionPendingJoinRequest:
		return "⏳"
	case domain.DecisionCheckFailed:
		return "⚠️"
	default:
		return "❌"
	}
}

// result renders a lookup whose validation half is present. The name line is
// only shown when the identity provider answered.
func (r renderer) result(res domain.LookupResult) telegram.Message {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "║┣⪼ <b>%s:</b> %s\n", Stylize(label), value)
	}

	b.WriteString("🌟 " + Stylize("Phone Number Details") + " 🌟\n\n")
	b.WriteString("╔════❰ " + Stylize("Number Information") + " ❱═❍\n")
	line("Number", r.format(res.Number))

	if res.Identity != nil {
		line("Name", orNotAvailable(res.Identity.Name))
	}

	if v := res.Validation; v != nil {
		country := r.countryName
		if v.Country != nil && *v.Country != "" {
			country = *v.Country
		}
		line("Country", html.EscapeString(country))
		line("Location", orNotAvailable(v.Location))
		line("Carrier", orNotAvailable(v.Carrier))
		line("Line Type", orNotAvailable(v.LineType))

		valid := "❌ " + Stylize("Invalid")
		if v.Valid != nil && *v.Valid {
			valid = "✅ " + Stylize("Valid")
		}
		line("Valid", valid)

		if v.Timezone != nil {
			line("Timezone", orNotAvailable(v.Timezone))
		}
	}

	b.WriteString("║╰━━━━━━━━━━━━━━━➣\n")
	b.WriteString("╚══════════════════❍")

	display := r.format(res.Number)

	return telegram.Message{
		Text: b.String(),
		Buttons: [][]telegram.Button{{
			{Text: "✨ " + Stylize("WhatsApp"), URL: "https://wa.me/" + display},
			{Text: "💫 " + Stylize("Telegram"), URL: "https://t.me/" + display},
		}},
	}
}

func (r renderer) newUserNotice(s telegram.Sender) string {
	return fmt.Sprintf("👤 New User Started Bot\nID: <code>%d</code>\nUsername: %s\nName: %s",
		s.ID, username(s), html.EscapeString(s.FirstName))
}

func (r renderer) queryNotice(s telegram.Sender, number domain.PhoneNumber) string {
	return fmt.Sprintf("🔎 User Query\nUser: <code>%d</code> %s\nNumber: <code>%s</code>",
		s.ID, username(s), r.format(number))
}

func (r renderer) storageNotice(s telegram.Sender, number domain.PhoneNumber) string {
	return fmt.Sprintf("⚠️ Could not record query\nUser: <code>%d</code>\nNumber: <code>%s</code>",
		s.ID, r.format(number))
}

func joinKeyboard(links []domain.JoinLink) [][]telegram.Button {
	rows := make([][]telegram.Button, 0, len(links)+1)
	for _, l := range links {
		rows = append(rows, []telegram.Button{{Text: "📢 " + Stylize("Join "+l.Name), URL: l.URL}})
	}

	return append(rows, []telegram.Button{{Text: "✅ " + Stylize("Check Membership"), CallbackData: CheckMembershipData}})
}

func orNotAvailable(v *string) string {
	if v == nil || *v == "" {
		return NotAvailable
	}

	return html.EscapeString(*v)
}

func username(s telegram.Sender) string {
	if s.Username == "" {
		return "-"
	}

	return "@" + html.EscapeString(s.Username)
}
