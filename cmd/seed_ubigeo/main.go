// seed_ubigeo genera el script SQL para poblar la tabla de ubigeos (INEI) a
// partir del CSV oficial, que viene codificado en ISO-8859-1.
//
// Formato esperado por línea: codigo;departamento;provincia;distrito
// (el código de 6 dígitos es departamento+provincia+distrito, 2 dígitos cada uno).
//
// Uso: go run ./cmd/seed_ubigeo [ruta/ubigeo.csv]
// Por defecto busca ubigeo.csv en el directorio actual.
// Escribe: migrations/002_seed_ubigeo.sql
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type ubigeo struct {
	code                           string
	department, province, district string
}

func main() {
	csvPath := "ubigeo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseUbigeoCSV(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "CSV sin filas válidas")
		os.Exit(1)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].code < rows[j].code })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_ubigeo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Ubigeos Perú (código INEI de 6 dígitos)\n")
	out.WriteString("-- Generado desde el CSV oficial con cmd/seed_ubigeo\n\n")
	out.WriteString("INSERT INTO ubigeo (code, department, province, district) VALUES\n")
	for i, u := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s')%s\n",
			u.code, escapeSQL(u.department), escapeSQL(u.province), escapeSQL(u.district), sep)
	}
	out.WriteString("ON CONFLICT (code) DO UPDATE SET\n")
	out.WriteString("  department = EXCLUDED.department,\n")
	out.WriteString("  province = EXCLUDED.province,\n")
	out.WriteString("  district = EXCLUDED.district;\n")

	fmt.Printf("Generado %s: %d ubigeos\n", outPath, len(rows))
}

// parseUbigeoCSV lee el CSV transcodificando desde ISO-8859-1 y descarta
// cabeceras y filas incompletas.
func parseUbigeoCSV(f *os.File) ([]ubigeo, error) {
	var rows []ubigeo
	sc := bufio.NewScanner(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	for sc.Scan() {
		parts := strings.Split(sc.Text(), ";")
		if len(parts) < 4 {
			continue
		}
		code := strings.TrimSpace(parts[0])
		if len(code) != 6 || !allDigits(code) {
			continue
		}
		rows = append(rows, ubigeo{
			code:       code,
			department: strings.TrimSpace(parts[1]),
			province:   strings.TrimSpace(parts[2]),
			district:   strings.TrimSpace(parts[3]),
		})
	}
	return rows, sc.Err()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
