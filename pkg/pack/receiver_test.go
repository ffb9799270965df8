package pack

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type chunkRecorder struct {
	lock   sync.Mutex
	chunks []*Chunk
	ch     chan *Chunk
}

func newChunkRecorder() *chunkRecorder {
	return &chunkRecorder{ch: make(chan *Chunk, 16)}
}

func (r *chunkRecorder) HandleChunk(ctx context.Context, c *Chunk) {
	r.lock.Lock()
	r.chunks = append(r.chunks, c)
	r.lock.Unlock()
	r.ch <- c
}

func (r *chunkRecorder) next(t *testing.T) *Chunk {
	select {
	case c := <-r.ch:
		return c
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expect chunk timeout")
	}
	return nil
}

func TestReceiver(t *testing.T) {
	pr, pw := io.Pipe()
	recv := NewReceiver(pr)
	syncRec, skinRec := newChunkRecorder(), newChunkRecorder()
	require.NoError(t, recv.Attach("sync", syncRec))
	require.NoError(t, recv.Attach("skin", skinRec))

	errCh := make(chan error, 1)
	go func() { errCh <- recv.Run(context.Background()) }()

	go func() {
		pw.Write(frameBytes("sync", []byte("hi")))
		pw.Write(frameBytes("other", []byte{1, 2, 3}))
		pw.Write(frameBytes("skin", nil))
		pw.Close()
	}()

	require.Equal(t, &Chunk{Path: "sync", Data: []byte("hi"), Size: 2, Last: true}, syncRec.next(t))
	require.Equal(t, &Chunk{Path: "skin", Last: true}, skinRec.next(t))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("receiver not stopped on EOF")
	}
}

func TestReceiverTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	recv := NewReceiver(pr)
	recv.Timeout = 20 * time.Millisecond
	rec := newChunkRecorder()
	require.NoError(t, recv.Attach("sync", rec))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go recv.Run(ctx)

	frame := frameBytes("sync", []byte("abc"))
	_, err := pw.Write(frame[:len(frame)-1])
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	_, err = pw.Write(frame)
	require.NoError(t, err)
	require.Equal(t, &Chunk{Path: "sync", Data: []byte("abc"), Size: 3, Last: true}, rec.next(t))
}

func TestReceiverCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	recv := NewReceiver(pr)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- recv.Run(ctx) }()
	cancel()
	select {
	case err := <-errCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("receiver not stopped on cancel")
	}
}

func TestReceiverAttach(t *testing.T) {
	recv := NewReceiver(nil)
	require.True(t, errors.Is(recv.Attach("a b", newChunkRecorder()), ErrInvalidPath))
	require.True(t, errors.Is(recv.Attach("ok", nil), ErrInvalidArguments))

	first, second := newChunkRecorder(), newChunkRecorder()
	require.NoError(t, recv.Attach("ok", first))
	require.NoError(t, recv.Attach("ok", second))
	recv.apply(context.Background(), ParseResult{Chunk: &Chunk{Path: "ok", Last: true}})
	require.Empty(t, first.chunks)
	require.Len(t, second.chunks, 1)

	recv.Detach("ok")
	recv.apply(context.Background(), ParseResult{Chunk: &Chunk{Path: "ok", Last: true}})
	require.Len(t, second.chunks, 1)
}

func TestReceiverFallback(t *testing.T) {
	pr, pw := io.Pipe()
	recv := NewReceiver(pr)
	syncRec, anyRec := newChunkRecorder(), newChunkRecorder()
	require.NoError(t, recv.Attach("sync", syncRec))
	recv.Fallback = anyRec

	errCh := make(chan error, 1)
	go func() { errCh <- recv.Run(context.Background()) }()
	go func() {
		pw.Write(frameBytes("other", []byte{1, 2, 3}))
		pw.Write(frameBytes("sync", []byte("hi")))
		pw.Close()
	}()

	require.Equal(t, &Chunk{Path: "other", Data: []byte{1, 2, 3}, Size: 3, Last: true}, anyRec.next(t))
	require.Equal(t, "sync", syncRec.next(t).Path)
	require.NoError(t, <-errCh)
	require.Len(t, anyRec.chunks, 1)
}
