package signals

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const syntheticIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// StringifyID converte um identificador numérico ou string em sua forma
// canônica de string. Valores sem representação utilizável retornam vazio.
func StringifyID(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		if v == math.Trunc(v) {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return StringifyID(float64(v))
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return ""
	}
}

// CleanPlatformID garante um identificador de plataforma não vazio:
// identificadores presentes são normalizados para string; ausentes recebem um
// id sintético tiktok_<millis>_<sufixo-base36> com sufixo aleatório por
// chamada, distinto mesmo dentro do mesmo milissegundo.
func CleanPlatformID(raw any) string {
	if id := StringifyID(raw); id != "" {
		return id
	}

	suffix, err := gonanoid.Generate(syntheticIDAlphabet, 9)
	if err != nil {
		// Sem entropia o timestamp em nanossegundos ainda desempata chamadas
		suffix = strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return fmt.Sprintf("tiktok_%d_%s", time.Now().UnixMilli(), suffix)
}
