package middleware

var RequestsTotal = requestsTotal
