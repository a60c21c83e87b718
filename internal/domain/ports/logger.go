package ports

// Logger é o log estruturado usado por services e infraestrutura.
// args são pares chave/valor: logger.Info("message created", "message_id", id).
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With devolve um logger que inclui args em todas as entradas
	With(args ...any) Logger
}
