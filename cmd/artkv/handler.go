package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/AfshinJalili/artkv/internal/store"
)

// replyWriter is the subset of redcon.Conn the command handler writes to.
type replyWriter interface {
	WriteString(str string)
	WriteError(msg string)
	WriteBulk(bulk []byte)
	WriteBulkString(bulk string)
	WriteInt(num int)
	WriteNull()
}

func wrongArgs(w replyWriter, name string) {
	w.WriteError(fmt.Sprintf("ERR wrong number of arguments for %s", name))
}

func writeErr(w replyWriter, err error) {
	w.WriteError("ERR " + err.Error())
}

// dispatch executes one command and reports whether the connection should
// be closed afterwards.
func dispatch(st *store.Store, w replyWriter, args [][]byte) bool {
	if len(args) == 0 {
		w.WriteError("ERR empty command")
		return false
	}
	switch name := strings.ToUpper(string(args[0])); name {
	case "PING":
		if len(args) > 1 {
			w.WriteBulk(args[1])
			return false
		}
		w.WriteString("PONG")
	case "QUIT":
		w.WriteString("OK")
		return true
	case "GET":
		if len(args) != 2 {
			wrongArgs(w, name)
			return false
		}
		val, err := st.Get(args[1])
		if err != nil {
			if errors.Is(err, store.ErrKeyNotFound) {
				w.WriteNull()
				return false
			}
			writeErr(w, err)
			return false
		}
		w.WriteBulk(val)
	case "SET":
		if len(args) < 3 {
			wrongArgs(w, name)
			return false
		}
		nx := false
		for _, opt := range args[3:] {
			if strings.ToUpper(string(opt)) != "NX" {
				w.WriteError("ERR syntax error")
				return false
			}
			nx = true
		}
		if nx {
			ok, err := st.SetNX(args[1], args[2])
			if err != nil {
				writeErr(w, err)
				return false
			}
			if !ok {
				w.WriteNull()
				return false
			}
			w.WriteString("OK")
			return false
		}
		if err := st.Set(args[1], args[2]); err != nil {
			writeErr(w, err)
			return false
		}
		w.WriteString("OK")
	case "SETNX":
		if len(args) != 3 {
			wrongArgs(w, name)
			return false
		}
		ok, err := st.SetNX(args[1], args[2])
		if err != nil {
			writeErr(w, err)
			return false
		}
		if ok {
			w.WriteInt(1)
		} else {
			w.WriteInt(0)
		}
	case "DEL":
		if len(args) < 2 {
			wrongArgs(w, name)
			return false
		}
		deleted := 0
		for _, key := range args[1:] {
			err := st.Delete(key)
			if err == nil {
				deleted++
				continue
			}
			if !errors.Is(err, store.ErrKeyNotFound) {
				writeErr(w, err)
				return false
			}
		}
		w.WriteInt(deleted)
	case "EXISTS":
		if len(args) < 2 {
			wrongArgs(w, name)
			return false
		}
		count := 0
		for _, key := range args[1:] {
			if st.Has(key) {
				count++
			}
		}
		w.WriteInt(count)
	case "DBSIZE":
		w.WriteInt(st.Len())
	case "INFO":
		w.WriteBulkString(formatInfo(st.Info()))
	default:
		w.WriteError(fmt.Sprintf("ERR unknown command '%s'", strings.ToLower(name)))
	}
	return false
}

func formatInfo(info store.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "keys:%d\nindex:%s\ncompression:%s\nvalue_bytes:%d\ncompressed_values:%d\n",
		info.Keys, info.Index, info.Compression, info.ValueBytes, info.Compressed)
	if info.Tree != nil {
		tree, _ := json.Marshal(info.Tree)
		fmt.Fprintf(&b, "tree:%s\n", tree)
	}
	return b.String()
}
