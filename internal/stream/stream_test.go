package stream

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func testFrame(level uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, color.RGBA{level, 0, 0, 255})
		}
	}
	return img
}

func decodeFrame(t *testing.T, data []byte) *image.RGBA {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode pushed frame: %v", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
			for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
				rgba.Set(x, y, img.At(x, y))
			}
		}
	}
	return rgba
}

func TestServer_IndexPage(t *testing.T) {
	srv := httptest.NewServer(NewServer().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "/frames") {
		t.Fatal("index page should reference the frame feed")
	}
}

func TestServer_NewClientGetsLatestThenUpdates(t *testing.T) {
	s := NewServer()
	if err := s.Publish(testFrame(100)); err != nil {
		t.Fatalf("publish: %v", err)
	}

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/frames"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// A fresh client is primed with the latest published frame.
	mt, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read primed frame: %v", err)
	}
	if mt != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", mt)
	}
	img := decodeFrame(t, data)
	if r, _, _, _ := img.At(0, 0).RGBA(); uint8(r>>8) != 100 {
		t.Fatalf("primed frame red = %d, want 100", r>>8)
	}

	// Once subscribed (proven by the first read), new frames come through.
	if err := s.Publish(testFrame(200)); err != nil {
		t.Fatalf("publish update: %v", err)
	}
	_, data, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read updated frame: %v", err)
	}
	img = decodeFrame(t, data)
	if r, _, _, _ := img.At(0, 0).RGBA(); uint8(r>>8) != 200 {
		t.Fatalf("updated frame red = %d, want 200", r>>8)
	}
}
