package model

import "time"

const DefaultTimeout = 500 * time.Millisecond

const HeaderContentType = "Content-Type"
const ContentTypeJSON = "application/json"

type ContextKey string

const KeyContextLogger ContextKey = "logger"

const KeyLoggerError = "error"
