package builtins

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kaelscript/kael/internal/runtime"
)

// httpModule returns the `http` host module: request(method, url, body?)
// performs a single synchronous round trip and returns a Record
// `{status, body}`; createServer(port, handler) starts a blocking HTTP
// listener on port that calls handler for every request with a
// `{method, path, body}` Record and expects a string response back.
func httpModule(invoke func(fn runtime.Value, args []runtime.Value) (runtime.Value, error)) *runtime.Record {
	mod := runtime.NewRecord()
	mod.Set("request", runtime.NewHostFunction("request", httpRequest))
	mod.Set("createServer", runtime.NewHostFunction("createServer", httpCreateServer(invoke)))
	return mod
}

func httpRequest(args []runtime.Value) (runtime.Value, error) {
	method, err := stringArg(args, 0, "request")
	if err != nil {
		return nil, err
	}
	url, err := stringArg(args, 1, "request")
	if err != nil {
		return nil, err
	}
	var body io.Reader
	if len(args) > 2 {
		body = strings.NewReader(runtime.ToKaelString(args[2]))
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}

	result := runtime.NewRecord()
	result.Set("status", runtime.Number(resp.StatusCode))
	result.Set("body", runtime.String(respBody))
	return result, nil
}

// httpCreateServer binds a handler Function, invoked through the
// interpreter's own call mechanics (via invoke) so exceptions thrown from
// script code propagate as ordinary Go errors out of the handler.
func httpCreateServer(invoke func(fn runtime.Value, args []runtime.Value) (runtime.Value, error)) runtime.HostFunctionImpl {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("createServer: expected (port, handler)")
		}
		port := runtime.ToKaelString(args[0])
		handler := args[1]

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			reqBody, _ := io.ReadAll(r.Body)
			reqRecord := runtime.NewRecord()
			reqRecord.Set("method", runtime.String(r.Method))
			reqRecord.Set("path", runtime.String(r.URL.Path))
			reqRecord.Set("body", runtime.String(reqBody))

			result, err := invoke(handler, []runtime.Value{reqRecord})
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, runtime.ToKaelString(result))
		})

		return runtime.Undefined_, http.ListenAndServe(":"+port, mux)
	}
}
