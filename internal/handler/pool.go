package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical strategy report without growing
const initialBufferSize = 4 << 10

// bufferPool recycles response encoding buffers
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
