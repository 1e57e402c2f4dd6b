package report

// The narrative below is the report author's commentary on the benchmark.
// It is not derived from the Dataset and is reproduced exactly as written,
// including figures quoted in the prose.

var conclusions = []string{
	"COMPASS supera a PostgreSQL en el 55.75% de las queries",
	"La ventaja de COMPASS es más pronunciada en queries complejas (>10 joins)",
	"Las distancias L1 de COMPASS son consistentemente menores",
	"COMPASS mantiene mejor control de la cardinalidad en todos los grupos",
	"La diferencia en rendimiento aumenta con la complejidad de las queries",
}

var recommendations = []string{
	"Para queries simples (4-9 joins), ambos optimizadores son competitivos",
	"Para queries complejas (>10 joins), COMPASS es claramente superior",
	"PostgreSQL podría beneficiarse de mejores estimaciones de cardinalidad",
	"La estrategia de sketch-merging de COMPASS es particularmente efectiva",
}

// Conclusions returns the author's main conclusions in report order.
func Conclusions() []string {
	return append([]string(nil), conclusions...)
}

// Recommendations returns the author's recommendations in report order.
func Recommendations() []string {
	return append([]string(nil), recommendations...)
}
