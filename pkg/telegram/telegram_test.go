package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"numberbot/pkg/domain"
	"numberbot/pkg/notify"
	"numberbot/pkg/serrors"
	"numberbot/pkg/telegram"
	"path"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	form   map[string]string
}

type reply struct {
	status int
	body   string
}

// fakeAPI answers Bot API methods from a table and records every call.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []call
	replies map[string]reply
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseMultipartForm(1 << 20)

	form := map[string]string{}
	if r.MultipartForm != nil {
		for k, v := range r.MultipartForm.Value {
			form[k] = v[0]
		}
	}
	for k := range r.Form {
		form[k] = r.Form.Get(k)
	}

	method := path.Base(r.URL.Path)

	f.mu.Lock()
	f.calls = append(f.calls, call{method: method, form: form})
	rep, ok := f.replies[method]
	f.mu.Unlock()

	if !ok {
		rep = reply{status: http.StatusNotFound, body: `{"ok":false,"error_code":404,"description":"Not Found"}`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = w.Write([]byte(rep.body))
}

func (f *fakeAPI) last(t *testing.T) call {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls)

	return f.calls[len(f.calls)-1]
}

func ok(result string) reply {
	return reply{status: http.StatusOK, body: `{"ok":true,"result":` + result + `}`}
}

func failure(code int, description string, params string) reply {
	body := `{"ok":false,"error_code":` + strconv.Itoa(code) + `,"description":"` + description + `"`
	if params != "" {
		body += `,"parameters":` + params
	}

	return reply{status: code, body: body + `}`}
}

func newClient(t *testing.T, replies map[string]reply) (*telegram.Client, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{replies: replies}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	b, err := bot.New("test-token", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)

	return telegram.New(b), api
}

const sentMessage = `{"message_id":7,"date":1700000000,"chat":{"id":42,"type":"private"},"text":"hi"}`

func TestSend(t *testing.T) {
	c, api := newClient(t, map[string]reply{"sendMessage": ok(sentMessage)})

	id, err := c.Send(context.Background(), 42, telegram.Message{
		Text:    "<b>hi</b>",
		Buttons: [][]telegram.Button{{{Text: "WhatsApp", URL: "https://wa.me/+919876543210"}}},
	})
	require.NoError(t, err)
	require.Equal(t, 7, id)

	got := api.last(t)
	require.Equal(t, "sendMessage", got.method)
	require.Equal(t, "42", got.form["chat_id"])
	require.Equal(t, "HTML", got.form["parse_mode"])
	require.Contains(t, got.form["reply_markup"], "https://wa.me/+919876543210")
}

func TestEdit_NotModifiedIsIgnored(t *testing.T) {
	c, _ := newClient(t, map[string]reply{
		"editMessageText": failure(http.StatusBadRequest,
			"Bad Request: message is not modified: specified new message content is exactly the same", ""),
	})

	require.NoError(t, c.Edit(context.Background(), 42, 7, telegram.Message{Text: "same"}))
}

func TestSend_Throttled(t *testing.T) {
	c, _ := newClient(t, map[string]reply{
		"sendMessage": failure(http.StatusTooManyRequests, "Too Many Requests: retry after 5", `{"retry_after":5}`),
	})

	_, err := c.Send(context.Background(), 42, telegram.Message{Text: "hi"})
	require.ErrorIs(t, err, serrors.ErrRateLimited)

	var throttled *notify.ThrottledError
	require.ErrorAs(t, err, &throttled)
	require.Equal(t, 5*time.Second, throttled.RetryAfter)
}

func TestMemberStatus(t *testing.T) {
	for body, want := range map[string]domain.MemberStatus{
		`{"status":"creator","user":{"id":1,"is_bot":false,"first_name":"A"},"is_anonymous":false}`: domain.MemberStatusOwner,
		`{"status":"member","user":{"id":1,"is_bot":false,"first_name":"A"}}`:                       domain.MemberStatusMember,
		`{"status":"restricted","user":{"id":1,"is_bot":false,"first_name":"A"},"is_member":true}`:  domain.MemberStatusMember,
		`{"status":"restricted","user":{"id":1,"is_bot":false,"first_name":"A"},"is_member":false}`: domain.MemberStatusLeft,
		`{"status":"left","user":{"id":1,"is_bot":false,"first_name":"A"}}`:                         domain.MemberStatusLeft,
		`{"status":"kicked","user":{"id":1,"is_bot":false,"first_name":"A"},"until_date":0}`:        domain.MemberStatusKicked,
	} {
		c, api := newClient(t, map[string]reply{"getChatMember": ok(body)})

		got, err := c.MemberStatus(context.Background(), "-1001234", 1)
		require.NoError(t, err, body)
		require.Equal(t, want, got, body)

		req := api.last(t)
		require.Equal(t, "-1001234", req.form["chat_id"])
		require.Equal(t, "1", req.form["user_id"])
	}
}

func TestMemberStatus_Error(t *testing.T) {
	c, _ := newClient(t, map[string]reply{
		"getChatMember": failure(http.StatusBadRequest, "Bad Request: chat not found", ""),
	})

	status, err := c.MemberStatus(context.Background(), "-1001234", 1)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, domain.MemberStatusUnknown, status)
}

func TestInviteLink_PublicChannel(t *testing.T) {
	c, _ := newClient(t, map[string]reply{
		"getChat": ok(`{"id":-1001234,"type":"channel","title":"News","username":"news","accent_color_id":0,"max_reaction_count":0}`),
	})

	url, err := c.InviteLink(context.Background(), domain.Channel{ID: "-1001234"})
	require.NoError(t, err)
	require.Equal(t, "https://t.me/news", url)
}

func TestInviteLink_PrivateChannelCreatesJoinRequestLink(t *testing.T) {
	c, api := newClient(t, map[string]reply{
		"getChat": ok(`{"id":-1001234,"type":"channel","title":"Private","accent_color_id":0,"max_reaction_count":0}`),
		"createChatInviteLink": ok(`{"invite_link":"https://t.me/+AbCdEf","creator":{"id":9,"is_bot":true,"first_name":"bot"},` +
			`"creates_join_request":true,"is_primary":false,"is_revoked":false}`),
	})

	url, err := c.InviteLink(context.Background(), domain.Channel{ID: "-1001234"})
	require.NoError(t, err)
	require.Equal(t, "https://t.me/+AbCdEf", url)

	req := api.last(t)
	require.Equal(t, "createChatInviteLink", req.method)
	require.Equal(t, "true", req.form["creates_join_request"])
}

func TestNotify(t *testing.T) {
	c, api := newClient(t, map[string]reply{"sendMessage": ok(sentMessage)})

	require.NoError(t, c.Notify(context.Background(), notify.Message{Kind: notify.KindQuery, ChatID: -100500, Text: "query"}))
	require.Equal(t, "-100500", api.last(t).form["chat_id"])

	err := c.Notify(context.Background(), notify.Message{Kind: notify.KindQuery, Text: "query"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestMemberUserID(t *testing.T) {
	for _, body := range []string{
		`{"status":"member","user":{"id":77,"is_bot":false,"first_name":"A"}}`,
		`{"status":"administrator","user":{"id":77,"is_bot":false,"first_name":"A"},"can_be_edited":false}`,
		`{"status":"left","user":{"id":77,"is_bot":false,"first_name":"A"}}`,
	} {
		var member models.ChatMember
		require.NoError(t, json.Unmarshal([]byte(body), &member))

		id, found := telegram.MemberUserID(member)
		require.True(t, found, body)
		require.Equal(t, domain.UserID(77), id, body)
	}

	_, found := telegram.MemberUserID(models.ChatMember{})
	require.False(t, found)
}

func TestSenderOf(t *testing.T) {
	s, found := telegram.SenderOf(&models.User{ID: 5, Username: "neo", FirstName: "Thomas"})
	require.True(t, found)
	require.Equal(t, telegram.Sender{ID: 5, Username: "neo", FirstName: "Thomas"}, s)

	s, found = telegram.SenderOf(models.User{ID: 6})
	require.True(t, found)
	require.Equal(t, domain.UserID(6), s.ID)

	_, found = telegram.SenderOf((*models.User)(nil))
	require.False(t, found)
	_, found = telegram.SenderOf("nope")
	require.False(t, found)
}
