// Package intent maps loosely-structured intent payloads onto draft UI
// trees. The mapper places no validity guarantees on its output, that is
// the validation pipeline's job; it only promises the draft tree shape:
// a root id plus a flat element map.
//
// Payloads either name their intent explicitly ({"intent": "form", ...}) or
// are classified by shape: fenced code blocks become code replies, a fields
// list becomes a form, question+options becomes a selection, and so on.
package intent
