package model

// Statement is one SQL text with $n placeholders and its bound args, in
// placeholder order.
type Statement struct {
	SQL  string
	Args []interface{}
}

func NewStatement(sql string, args ...interface{}) Statement {
	return Statement{SQL: sql, Args: args}
}
