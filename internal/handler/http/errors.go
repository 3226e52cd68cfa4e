// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// msgServerError is the only message a caller ever sees for a failure that
// is not classified by the service layer.
const msgServerError = "server error"

const msgGatewayTimeout = "request timed out"
