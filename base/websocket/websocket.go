// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket provides a simple WebSocket client
// on top of [github.com/gorilla/websocket].
package websocket

import (
	"encoding/json"
	"net"

	"cogentcore.org/glyphtrace/base/errors"
	"github.com/gorilla/websocket"
)

// MessageTypes are the types of WebSocket messages.
type MessageTypes int32

const (
	// TextMessage is a text data message, such as JSON.
	TextMessage MessageTypes = websocket.TextMessage

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = websocket.BinaryMessage
)

// Client represents a WebSocket client connection.
// You can use [Connect] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}
}

// Connect connects to a WebSocket server and returns a [Client].
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// OnMessage sets a callback function to be called when a message is received.
// This function can only be called once, and [Client.Receive] must not be
// used after it.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	go func() {
		for {
			typ, msg, err := c.conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) && !errors.Is(err, net.ErrClosed) {
					errors.Log(err)
				}
				close(c.done)
				return
			}
			f(MessageTypes(typ), msg)
		}
	}()
}

// Receive waits for the next message from the server.
func (c *Client) Receive() (MessageTypes, []byte, error) {
	typ, msg, err := c.conn.ReadMessage()
	return MessageTypes(typ), msg, err
}

// ReceiveJSON waits for the next message from the server
// and decodes it as JSON into v.
func (c *Client) ReceiveJSON(v any) error {
	_, msg, err := c.Receive()
	if err != nil {
		return err
	}
	return json.Unmarshal(msg, v)
}

// Send sends a message to the WebSocket server with the given type and message.
func (c *Client) Send(typ MessageTypes, msg []byte) error {
	return c.conn.WriteMessage(int(typ), msg)
}

// SendJSON sends the JSON encoding of v as a text message.
func (c *Client) SendJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Send(TextMessage, b)
}

// Close cleanly closes the WebSocket connection.
// It does not directly trigger [Client.OnClose], but once the connection
// is closed, [Client.OnMessage] will trigger it.
func (c *Client) Close() error {
	err := c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}

// OnClose sets a callback function to be called when the connection is closed.
// This function can only be called once.
func (c *Client) OnClose(f func()) {
	go func() {
		<-c.done
		f()
	}()
}
