package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/sjson"
)

// notification builds a JSON-RPC 2.0 notification.
func notification(method string, params any) ([]byte, error) {
	return envelope(nil, method, params)
}

// request builds a JSON-RPC 2.0 request with the given id.
func request(id int, method string, params any) ([]byte, error) {
	return envelope(&id, method, params)
}

func envelope(id *int, method string, params any) ([]byte, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encoding %s params: %w", method, err)
	}

	msg, err := sjson.SetBytes(nil, "jsonrpc", "2.0")
	if err != nil {
		return nil, err
	}
	if id != nil {
		if msg, err = sjson.SetBytes(msg, "id", *id); err != nil {
			return nil, err
		}
	}
	if msg, err = sjson.SetBytes(msg, "method", method); err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(msg, "params", raw)
}

// writeMessage writes msg, with a Content-Length header when framed.
func writeMessage(w io.Writer, msg []byte, framed bool) error {
	if framed {
		if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(msg)); err != nil {
			return err
		}
		_, err := w.Write(msg)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", msg)
	return err
}
