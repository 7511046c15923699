package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestEmailJSSend(t *testing.T) {
	var got emailJSRequest
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	ej := &EmailJS{
		Endpoint:   srv.URL,
		ServiceID:  "service_x",
		TemplateID: "template_y",
		PublicKey:  "pub_z",
		Client:     srv.Client(),
	}
	if err := ej.Send(context.Background(), DefaultNotice); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("content type = %q", contentType)
	}
	if got.ServiceID != "service_x" || got.TemplateID != "template_y" || got.UserID != "pub_z" {
		t.Errorf("ids = %+v", got)
	}
	want := map[string]string{
		"to_name":   "My Love",
		"from_name": "Valentine App",
		"message":   DefaultNotice.Message,
	}
	for k, v := range want {
		if got.TemplateParams[k] != v {
			t.Errorf("template_params[%s] = %q, want %q", k, got.TemplateParams[k], v)
		}
	}
}

func TestEmailJSRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	ej := &EmailJS{Endpoint: srv.URL, ServiceID: "s", TemplateID: "t", PublicKey: "bad", Client: srv.Client()}
	err := ej.Send(context.Background(), DefaultNotice)

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusBadRequest || se.Body != "The Public Key is invalid" {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestEmailJSNotConfigured(t *testing.T) {
	ej := &EmailJS{ServiceID: "s"}
	if err := ej.Send(context.Background(), DefaultNotice); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestEmailJSHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ej := &EmailJS{Endpoint: srv.URL, ServiceID: "s", TemplateID: "t", PublicKey: "k", Client: srv.Client()}
	if err := ej.Send(ctx, DefaultNotice); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

type blockingSender struct {
	release chan struct{}
	sent    chan Notice
}

func (b *blockingSender) Send(ctx context.Context, n Notice) error {
	<-b.release
	b.sent <- n
	return errors.New("smtp down")
}

func TestDispatcherDoesNotBlock(t *testing.T) {
	s := &blockingSender{release: make(chan struct{}), sent: make(chan Notice, 1)}
	d := NewDispatcher(s, DefaultNotice, time.Second)

	var mu sync.Mutex
	var gotErr error
	calls := 0
	d.OnDone(func(n Notice, err error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		gotErr = err
	})

	returned := make(chan struct{})
	go func() {
		d.NotifyAccepted()
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("NotifyAccepted blocked on the sender")
	}

	close(s.release)
	d.Wait()

	if n := <-s.sent; n != DefaultNotice {
		t.Errorf("sent %+v", n)
	}
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("done called %d times", calls)
	}
	if gotErr == nil || gotErr.Error() != "smtp down" {
		t.Errorf("done err = %v", gotErr)
	}
}

func TestDispatcherDefaultTimeout(t *testing.T) {
	d := NewDispatcher(LogOnly{}, DefaultNotice, 0)
	if d.timeout != 10*time.Second {
		t.Errorf("timeout = %v", d.timeout)
	}
	d.NotifyAccepted()
	d.Wait()
}

func TestNewSender(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
		check   func(Sender) bool
	}{
		{"", false, func(s Sender) bool { _, ok := s.(LogOnly); return ok }},
		{BackendLog, false, func(s Sender) bool { _, ok := s.(LogOnly); return ok }},
		{BackendDesktop, false, func(s Sender) bool { _, ok := s.(Desktop); return ok }},
		{BackendEmailJS, false, func(s Sender) bool {
			ej, ok := s.(*EmailJS)
			return ok && ej.ServiceID == "svc"
		}},
		{"pigeon", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, err := NewSender(tt.backend, EmailJS{ServiceID: "svc"})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSender: %v", err)
			}
			if !tt.check(s) {
				t.Errorf("wrong sender type %T", s)
			}
		})
	}
}
