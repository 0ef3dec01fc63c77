package rewrite

// AllowList is the closed set of well-known ECMAScript built-ins and host
// globals GlobalResolverCall is permitted to introduce a bare identifier
// reference to. A resolver target outside this set is never inlined, no
// matter what the resolver maps it to.
var AllowList = buildAllowList([]string{
	"Object", "Array", "String", "Number", "Boolean", "Function", "Symbol",
	"Date", "RegExp", "Error", "TypeError", "RangeError", "SyntaxError",
	"ReferenceError", "Promise", "Map", "Set", "WeakMap", "WeakSet", "Proxy",
	"Reflect", "ArrayBuffer", "DataView", "SharedArrayBuffer", "Int8Array",
	"Uint8Array", "Uint8ClampedArray", "Int16Array", "Uint16Array",
	"Int32Array", "Uint32Array", "Float32Array", "Float64Array",
	"BigInt64Array", "BigUint64Array", "TextEncoder", "TextDecoder", "URL",
	"URLSearchParams", "Blob", "File", "FileReader", "FormData", "Request",
	"Response", "Headers", "AbortController", "XMLHttpRequest", "fetch",
	"WebSocket", "EventSource", "BroadcastChannel", "Worker", "SharedWorker",
	"ServiceWorker", "crypto", "Crypto", "SubtleCrypto", "CryptoKey",
	"performance", "Performance", "PerformanceObserver", "navigator",
	"Navigator", "location", "Location", "history", "History",
	"localStorage", "sessionStorage", "Storage", "indexedDB", "IDBFactory",
	"console", "Console", "document", "Document", "window", "Window",
	"self", "globalThis", "global", "setTimeout", "setInterval",
	"clearTimeout", "clearInterval", "requestAnimationFrame",
	"cancelAnimationFrame", "queueMicrotask", "atob", "btoa", "eval",
	"isNaN", "isFinite", "parseInt", "parseFloat", "encodeURI", "decodeURI",
	"encodeURIComponent", "decodeURIComponent", "JSON", "Math", "Intl",
	"Atomics", "NaN", "Infinity", "undefined", "structuredClone", "process",
	"Buffer", "require", "module", "exports", "__dirname", "__filename",
})

func buildAllowList(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
