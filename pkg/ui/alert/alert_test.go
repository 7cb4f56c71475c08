package alert

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
)

func TestMessenger(t *testing.T) {
	is := is.New(t)
	msg := Cmd("Right pressed!")()
	is.Equal(msg, Msg{Title: DefaultTitle, Message: "Right pressed!"})

	msg = Messenger{Title: "Inbox"}.Alert("hi")()
	is.Equal(msg, Msg{Title: "Inbox", Message: "hi"})
}

func TestAlerterFunc(t *testing.T) {
	is := is.New(t)
	var got string
	var a Alerter = AlerterFunc(func(m string) tea.Cmd {
		got = m
		return nil
	})
	is.True(a.Alert("x") == nil)
	is.Equal(got, "x")
}
