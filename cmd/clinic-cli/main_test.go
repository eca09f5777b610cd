package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-cli/internal/handler"
	"github.com/jwalitptl/clinic-cli/internal/handler/handlertest"
	"github.com/jwalitptl/clinic-cli/pkg/logger"
)

func newTestSession(input string, gw *handlertest.Gateway) (*handler.Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	s := handler.NewSession(strings.NewReader(input), &out, &errOut, gw, logger.Nop())
	return s, &out, &errOut
}

func TestRunUsage(t *testing.T) {
	for _, argv := range [][]string{nil, {"clinic"}, {"clinic", "5432"}, {"clinic", "5432", "bob", "extra"}} {
		var out, errOut bytes.Buffer
		code := run("/usr/local/bin/clinic-cli", argv, strings.NewReader(""), &out, &errOut)

		assert.Equal(t, exitUsage, code)
		assert.Equal(t, "Usage: clinic-cli <dbname> <port> <user>\n", errOut.String())
		assert.Empty(t, out.String())
	}
}

func TestRunInvalidPort(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run("clinic-cli", []string{"clinic", "not-a-port", "bob"}, strings.NewReader(""), &out, &errOut)

	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut.String(), "invalid port")
}

func TestServeExitClosesOnce(t *testing.T) {
	gw := &handlertest.Gateway{}
	s, out, _ := newTestSession("9\n", gw)

	code := serve(context.Background(), s)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, 1, gw.CloseCount)
	assert.Empty(t, gw.Calls)
	assert.True(t, strings.HasSuffix(out.String(), "Disconnecting from database...Done\n\nBye !\n"))
}

func TestServeAddDoctorThenExit(t *testing.T) {
	gw := &handlertest.Gateway{}
	s, out, errOut := newTestSession("1\n5\nSmith\nCardiology\n2\n9\n", gw)

	code := serve(context.Background(), s)

	assert.Equal(t, exitOK, code)
	require.Len(t, gw.Calls, 1)
	assert.Equal(t, "insert into Doctor (doctor_ID, name, specialty, did) values ($1, $2, $3, $4)", gw.Calls[0].Stmt.SQL)
	assert.Equal(t, []interface{}{"5", "Smith", "Cardiology", "2"}, gw.Calls[0].Stmt.Args)
	assert.Contains(t, out.String(), "ADDED VALUES\n")
	assert.Empty(t, errOut.String())
	assert.Equal(t, 1, gw.CloseCount)
}

func TestServeSurvivesFailures(t *testing.T) {
	gw := &handlertest.Gateway{Err: errors.New(`relation "doctor" does not exist`)}
	s, out, errOut := newTestSession("7\nabc\n8\nWL\n9\n", gw)

	code := serve(context.Background(), s)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, []string{"print", "print"}, gw.Ops())
	assert.Equal(t, 2, strings.Count(errOut.String(), `relation "doctor" does not exist`))
	assert.Equal(t, 3, strings.Count(out.String(), "MAIN MENU"))
	assert.Equal(t, 1, gw.CloseCount)
}

func TestServeEndOfInputCloses(t *testing.T) {
	gw := &handlertest.Gateway{}
	s, _, errOut := newTestSession("2\n10\n", gw)

	code := serve(context.Background(), s)

	assert.Equal(t, exitOK, code)
	assert.Empty(t, gw.Calls)
	assert.Contains(t, errOut.String(), "input ended before all fields were entered")
	assert.Equal(t, 1, gw.CloseCount)
}

func TestServeCancelledContext(t *testing.T) {
	gw := &handlertest.Gateway{}
	s, _, errOut := newTestSession("1\n", gw)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := serve(ctx, s)

	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut.String(), context.Canceled.Error())
	assert.Equal(t, 1, gw.CloseCount)
}

func TestServeUnavailableBookingKeepsMenuInSync(t *testing.T) {
	gw := &handlertest.Gateway{GuardMatched: false}
	s, out, errOut := newTestSession("4\n5\n40\n11\nAnn\nF\n34\n1 Main St\n1\n9\n", gw)

	code := serve(context.Background(), s)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, []string{"insert_if_exists"}, gw.Ops())
	assert.Contains(t, out.String(), handler.MsgNotAvailable+"\n")
	assert.Equal(t, 2, strings.Count(out.String(), "MAIN MENU"))
	assert.Empty(t, errOut.String())
	assert.Equal(t, 1, gw.CloseCount)
}
