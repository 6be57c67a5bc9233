package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// OperatorHeader names the counter operator a request is made for.
// It is used for audit stamps only; no authentication is performed.
const OperatorHeader = "X-Operator"

// DefaultOperator is recorded when a request names no operator.
const DefaultOperator = "system"

const maxOperatorLength = 100

const operatorKey = contextKey("operator")

// Operator stores the operator named by the request header in the Gin and
// request contexts.
func Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := strings.TrimSpace(c.GetHeader(OperatorHeader))
		if operator == "" {
			operator = DefaultOperator
		}
		if len(operator) > maxOperatorLength {
			operator = operator[:maxOperatorLength]
		}
		c.Set(string(operatorKey), operator)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), operatorKey, operator))
		c.Next()
	}
}

// GetOperatorFromContext retrieves the operator for the request, falling
// back to DefaultOperator when the Operator middleware did not run.
func GetOperatorFromContext(c *gin.Context) string {
	if v, exists := c.Get(string(operatorKey)); exists {
		if operator, ok := v.(string); ok {
			return operator
		}
	}
	if operator, ok := c.Request.Context().Value(operatorKey).(string); ok {
		return operator
	}
	return DefaultOperator
}
