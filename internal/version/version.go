package version

// Version es la versión actual de admisiones.
// Se actualiza en cada release.
const Version = "0.3.0"

// FullVersion retorna la versión con el prefijo v
func FullVersion() string {
	return "v" + Version
}
