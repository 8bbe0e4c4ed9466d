// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nodegrpc

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/blinklabs-io/nodegrpc/chain"
	"github.com/blinklabs-io/nodegrpc/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeStreamItem struct {
	msg *wire.Block
	err error
}

// fakeStream replays items and then reports io.EOF
type fakeStream struct {
	items []fakeStreamItem
	recvs int
}

func (s *fakeStream) Recv() (*wire.Block, error) {
	if s.recvs >= len(s.items) {
		s.recvs++
		return nil, io.EOF
	}
	item := s.items[s.recvs]
	s.recvs++
	return item.msg, item.err
}

func blockItem(content string) fakeStreamItem {
	return fakeStreamItem{msg: &wire.Block{Content: []byte(content)}}
}

// convertTestBlock accepts any content except "bad"
func convertTestBlock(msg *wire.Block) (string, error) {
	return convertBlock(
		func(data []byte) (string, error) {
			if string(data) == "bad" {
				return "", errors.New("malformed block")
			}
			return string(data), nil
		},
		msg,
	)
}

type streamRecorder struct {
	items    int
	finished []error
	cancels  int
}

func (r *streamRecorder) hooks() streamHooks {
	return streamHooks{
		item: func() {
			r.items++
		},
		finished: func(err error) {
			r.finished = append(r.finished, err)
		},
	}
}

func (r *streamRecorder) cancel() {
	r.cancels++
}

func TestResponseStreamInOrder(t *testing.T) {
	inner := &fakeStream{
		items: []fakeStreamItem{blockItem("a"), blockItem("b"), blockItem("c")},
	}
	recorder := &streamRecorder{}
	s := newResponseStream(inner, convertTestBlock, recorder.cancel, recorder.hooks())
	var got []string
	for {
		item, err := s.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 3, recorder.items)
	assert.Equal(t, []error{nil}, recorder.finished)
	assert.Equal(t, 1, recorder.cancels)
	// A finished stream stays finished without touching the transport
	recvs := inner.recvs
	for range 3 {
		_, err := s.Recv()
		assert.Equal(t, io.EOF, err)
	}
	assert.Equal(t, recvs, inner.recvs)
}

func TestResponseStreamFormatErrorTerminates(t *testing.T) {
	inner := &fakeStream{
		items: []fakeStreamItem{blockItem("a"), blockItem("bad"), blockItem("c")},
	}
	recorder := &streamRecorder{}
	s := newResponseStream(inner, convertTestBlock, recorder.cancel, recorder.hooks())
	item, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "a", item)
	_, err = s.Recv()
	assert.ErrorIs(t, err, chain.ErrFormat)
	// The valid item after the malformed one is never yielded
	_, err = s.Recv()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 1, recorder.items)
	require.Len(t, recorder.finished, 1)
	assert.ErrorIs(t, recorder.finished[0], chain.ErrFormat)
	assert.Equal(t, 1, recorder.cancels)
}

func TestResponseStreamRpcError(t *testing.T) {
	inner := &fakeStream{
		items: []fakeStreamItem{
			blockItem("a"),
			{err: status.Error(codes.Internal, "stream reset")},
		},
	}
	recorder := &streamRecorder{}
	s := newResponseStream(inner, convertTestBlock, recorder.cancel, recorder.hooks())
	_, err := s.Recv()
	require.NoError(t, err)
	_, err = s.Recv()
	assert.ErrorIs(t, err, chain.ErrRpc)
	assert.Equal(t, codes.Internal, status.Code(errors.Unwrap(err)))
	_, err = s.Recv()
	assert.Equal(t, io.EOF, err)
}

func TestResponseStreamAll(t *testing.T) {
	inner := &fakeStream{
		items: []fakeStreamItem{blockItem("a"), blockItem("b"), blockItem("bad")},
	}
	recorder := &streamRecorder{}
	s := newResponseStream(inner, convertTestBlock, recorder.cancel, recorder.hooks())
	var got []string
	var errs []error
	for item, err := range s.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b"}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], chain.ErrFormat)
}

func TestResponseStreamAllBreakCloses(t *testing.T) {
	inner := &fakeStream{
		items: []fakeStreamItem{blockItem("a"), blockItem("b"), blockItem("c")},
	}
	recorder := &streamRecorder{}
	s := newResponseStream(inner, convertTestBlock, recorder.cancel, recorder.hooks())
	for item, err := range s.All() {
		require.NoError(t, err)
		assert.Equal(t, "a", item)
		break
	}
	assert.Equal(t, 1, recorder.cancels)
	require.Len(t, recorder.finished, 1)
	assert.ErrorIs(t, recorder.finished[0], context.Canceled)
	_, err := s.Recv()
	assert.Equal(t, io.EOF, err)
	// Closing again has no effect
	s.Close()
	assert.Equal(t, 1, recorder.cancels)
}

func TestResponseStreamFuture(t *testing.T) {
	release := make(chan struct{})
	inner := &fakeStream{items: []fakeStreamItem{blockItem("a")}}
	var opened []error
	f := newResponseStreamFuture(
		context.Background(),
		DefaultExecutor,
		func(ctx context.Context) (messageStream[wire.Block], error) {
			<-release
			return inner, nil
		},
		convertTestBlock,
		streamHooks{
			opened: func(err error) {
				opened = append(opened, err)
			},
		},
	)
	_, ready, err := f.Poll()
	assert.False(t, ready)
	assert.NoError(t, err)
	close(release)
	<-f.Done()
	s, ready, err := f.Poll()
	require.True(t, ready)
	require.NoError(t, err)
	assert.Equal(t, []error{nil}, opened)
	// No item has been read during the handshake
	assert.Equal(t, 0, inner.recvs)
	item, err := s.Recv()
	require.NoError(t, err)
	assert.Equal(t, "a", item)
	_, err = s.Recv()
	assert.Equal(t, io.EOF, err)
	assert.PanicsWithValue(t, "polled a finished response", func() {
		_, _, _ = f.Poll()
	})
}

func TestResponseStreamFutureOpenError(t *testing.T) {
	var opened []error
	f := newResponseStreamFuture(
		context.Background(),
		DefaultExecutor,
		func(ctx context.Context) (messageStream[wire.Block], error) {
			return nil, status.Error(codes.Unavailable, "no stream")
		},
		convertTestBlock,
		streamHooks{
			opened: func(err error) {
				opened = append(opened, err)
			},
		},
	)
	s, err := f.Await(context.Background())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, chain.ErrRpc)
	require.Len(t, opened, 1)
	assert.ErrorIs(t, opened[0], chain.ErrRpc)
}
