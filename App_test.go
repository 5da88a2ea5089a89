package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunApp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_ = os.Setenv("LISTEN_ADDR", "127.0.0.1:18087")
		defer os.Unsetenv("LISTEN_ADDR")

		var appErr error
		go func() {
			appErr = RunApp()
		}()
		runtime.Gosched()

		var err error
		var res *http.Response
		for i := 0; i < 5; i++ {
			if appErr != nil {
				t.Errorf("RunApp() error = %v", appErr)
				break
			}

			time.Sleep(50 * time.Millisecond)
			client := http.Client{
				Timeout: time.Second * 2,
			}
			res, err = client.Get("http://127.0.0.1:18087/healthcheck")
			if err == nil {
				break
			}
		}

		assert.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		body, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, "health", string(body))
	})

	t.Run("fail_on_bad_listen_addr", func(t *testing.T) {
		_ = os.Setenv("LISTEN_ADDR", "not-an-address")
		defer os.Unsetenv("LISTEN_ADDR")

		var err error
		done := make(chan struct{})
		go func() {
			err = RunApp()
			close(done)
		}()

		select {
		case <-done:
			assert.Error(t, err)
		case <-time.After(time.Second * 2):
			t.Error("RunApp() should have failed immediately")
		}
	})
}

func TestHandleExitError(t *testing.T) {
	var out bytes.Buffer

	testCases := map[error]int{
		errors.New("dummy error"): ExitCodeMainError,
		nil:                       0,
	}

	for err, expectedCode := range testCases {
		out.Reset()
		actualExitCode := HandleExitError(&out, err)

		assert.Equal(t, expectedCode, actualExitCode)
		if err == nil {
			assert.Empty(t, out.String())
		} else {
			assert.Contains(t, out.String(), err.Error())
		}
	}
}
