package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// withGZip compresses responses for clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}

		next.ServeHTTP(gzipRW, req)

		if gzipRW.wroteBody {
			gzipWriter.Close()
		} else if gzipRW.statusCode != 0 {
			w.WriteHeader(gzipRW.statusCode)
		}
		gzipWriterPool.Put(gzipWriter)
	})
}

// gzipResponseWriter defers the status line until the first Write, so
// responses without a body go out without a Content-Encoding header.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	statusCode int
	wroteBody  bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.statusCode != 0 || w.wroteBody {
		return
	}
	w.statusCode = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteBody {
		w.wroteBody = true
		if w.statusCode == 0 {
			w.statusCode = http.StatusOK
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.statusCode)
	}
	return w.gzipWriter.Write(data)
}
