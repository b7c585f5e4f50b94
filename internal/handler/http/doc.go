// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the blog.
//
// It exposes route wiring, page handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, response
// compression, session loading and the owner guard are handled in this
// package before requests are delegated to the service layer.
package http
