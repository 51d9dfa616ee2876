package reporte

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"tallervehicular/internal/domain"
)

// The rendered document is a flat list of sections so one template
// serves every report type. Styles are inline: the output must survive
// both the browser and the PDF printer without external assets.

type documento struct {
	Titulo     string
	GeneradoEn time.Time
	Secciones  []seccion
}

type seccion struct {
	Titulo string
	Datos  [][2]string
	Tabla  *tabla
	Barras []ParticipacionEstado
}

type tabla struct {
	Encabezados []string
	Filas       [][]string
}

var plantilla = template.Must(template.New("reporte").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>{{.Titulo}}</title>
</head>
<body style="font-family:Arial,Helvetica,sans-serif;font-size:13px;color:#1f2937;margin:24px;">
<h1 style="font-size:20px;border-bottom:2px solid #1d4ed8;padding-bottom:8px;">{{.Titulo}}</h1>
<p style="color:#6b7280;">Generado el {{.GeneradoEn.Format "02/01/2006 15:04"}}</p>
{{range .Secciones}}
<h2 style="font-size:15px;margin-top:24px;color:#1d4ed8;">{{.Titulo}}</h2>
{{if .Datos}}
<table style="border-collapse:collapse;margin-top:8px;">
{{range .Datos}}<tr>
<td style="padding:3px 16px 3px 0;color:#6b7280;">{{index . 0}}</td>
<td style="padding:3px 0;font-weight:bold;">{{index . 1}}</td>
</tr>{{end}}
</table>
{{end}}
{{if .Barras}}
<table style="width:100%;border-collapse:collapse;margin-top:8px;">
{{range .Barras}}<tr>
<td style="width:120px;padding:4px 8px 4px 0;">{{.Etiqueta}}</td>
<td style="padding:4px 0;">
<div style="background:#e5e7eb;height:14px;width:100%;">
<div style="background:#1d4ed8;height:14px;width:{{printf "%.1f" .Porcentaje}}%;"></div>
</div>
</td>
<td style="width:90px;padding:4px 0 4px 8px;text-align:right;">{{.Cantidad}} ({{printf "%.1f" .Porcentaje}}%)</td>
</tr>{{end}}
</table>
{{end}}
{{if .Tabla}}
<table style="width:100%;border-collapse:collapse;margin-top:8px;">
<tr>
{{range .Tabla.Encabezados}}<th style="text-align:left;border-bottom:1px solid #9ca3af;padding:4px 8px;background:#f3f4f6;">{{.}}</th>{{end}}
</tr>
{{range .Tabla.Filas}}<tr>
{{range .}}<td style="border-bottom:1px solid #e5e7eb;padding:4px 8px;">{{.}}</td>{{end}}
</tr>{{end}}
</table>
{{end}}
{{end}}
</body>
</html>`))

func renderHTML(doc documento) ([]byte, error) {
	var buf bytes.Buffer
	if err := plantilla.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fechaCorta(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02/01/2006")
}

func filaOrden(o *domain.Orden) []string {
	placa := "-"
	if o.Vehiculo != nil {
		placa = o.Vehiculo.Placa
	}
	return []string{
		o.Numero,
		string(o.Tipo),
		string(o.Estado),
		placa,
		o.FechaIngreso.Format("02/01/2006"),
		fechaCorta(o.FechaFinalizacion),
	}
}

func tablaOrdenes(ordenes []domain.Orden) *tabla {
	t := &tabla{Encabezados: []string{"Número", "Tipo", "Estado", "Placa", "Ingreso", "Finalización"}}
	for i := range ordenes {
		t.Filas = append(t.Filas, filaOrden(&ordenes[i]))
	}
	return t
}

func datosResumen(r ResumenOrdenes) [][2]string {
	return [][2]string{
		{"Total de órdenes", strconv.Itoa(r.Total)},
		{"Pendientes", strconv.Itoa(r.Pendientes)},
		{"En proceso", strconv.Itoa(r.EnProceso)},
		{"Pausadas", strconv.Itoa(r.Pausadas)},
		{"Completadas", strconv.Itoa(r.Completadas)},
		{"Canceladas", strconv.Itoa(r.Canceladas)},
	}
}

func (r *ReporteVehiculo) documento() documento {
	doc := documento{
		Titulo:     "Historial del vehículo " + r.Vehiculo.Placa,
		GeneradoEn: r.GeneradoEn,
	}

	datos := [][2]string{
		{"Placa", r.Vehiculo.Placa},
		{"Marca / Modelo", r.Vehiculo.Marca + " " + r.Vehiculo.Modelo},
		{"Año", strconv.Itoa(r.Vehiculo.Anio)},
	}
	if r.Vehiculo.Cliente != nil {
		datos = append(datos, [2]string{"Cliente", r.Vehiculo.Cliente.NombreCompleto()})
	}
	if r.UltimoPreventivo != nil {
		datos = append(datos, [2]string{"Último preventivo", r.UltimoPreventivo.Numero + " (" + fechaCorta(r.UltimoPreventivo.FechaFinalizacion) + ")"})
	}
	doc.Secciones = append(doc.Secciones,
		seccion{Titulo: "Vehículo", Datos: datos},
		seccion{Titulo: "Resumen", Datos: datosResumen(r.Resumen)},
		seccion{Titulo: "Órdenes", Tabla: tablaOrdenes(r.Ordenes)},
	)
	return doc
}

func (r *ReportePeriodo) documento() documento {
	return documento{
		Titulo:     "Órdenes del " + r.Inicio.Format("02/01/2006") + " al " + r.Fin.Format("02/01/2006"),
		GeneradoEn: r.GeneradoEn,
		Secciones: []seccion{
			{Titulo: "Resumen", Datos: datosResumen(r.Resumen)},
			{Titulo: "Órdenes", Tabla: tablaOrdenes(r.Ordenes)},
		},
	}
}

func (r *ReporteRepuestos) documento() documento {
	consumo := &tabla{Encabezados: []string{"Código", "Repuesto", "Unidades consumidas"}}
	for _, fila := range r.Consumo {
		consumo.Filas = append(consumo.Filas, []string{fila.Codigo, fila.Nombre, strconv.Itoa(fila.Cantidad)})
	}

	bajo := &tabla{Encabezados: []string{"Código", "Repuesto", "Stock actual", "Stock mínimo", "Ubicación"}}
	for i := range r.BajoStock {
		rep := &r.BajoStock[i]
		bajo.Filas = append(bajo.Filas, []string{
			rep.Codigo, rep.Nombre, strconv.Itoa(rep.StockActual), strconv.Itoa(rep.StockMinimo), rep.Ubicacion,
		})
	}

	return documento{
		Titulo:     "Consumo de repuestos",
		GeneradoEn: r.GeneradoEn,
		Secciones: []seccion{
			{Titulo: "Mayor consumo (salidas)", Tabla: consumo},
			{Titulo: "Bajo stock", Tabla: bajo},
		},
	}
}

func (r *ReporteEstadisticas) documento() documento {
	return documento{
		Titulo:     "Estadísticas del taller",
		GeneradoEn: r.GeneradoEn,
		Secciones: []seccion{
			{Titulo: "Órdenes por estado", Barras: r.PorEstado},
			{Titulo: "Órdenes por tipo", Barras: r.PorTipo},
			{Titulo: "Inventario y flota", Datos: [][2]string{
				{"Vehículos", strconv.Itoa(r.TotalVehiculos)},
				{"Clientes", strconv.Itoa(r.TotalClientes)},
				{"Servicios en catálogo", strconv.Itoa(r.TotalServicios)},
				{"Repuestos", strconv.Itoa(r.TotalRepuestos)},
				{"Repuestos bajo stock", strconv.Itoa(r.BajoStock)},
			}},
		},
	}
}

func (r *ReportePreventivos) documento() documento {
	t := &tabla{Encabezados: []string{"Placa", "Vehículo", "Estado", "Último preventivo", "Próximo km", "Próxima fecha"}}
	for _, fila := range r.Filas {
		ultimo := "-"
		if fila.UltimoPreventivo != nil {
			ultimo = fila.UltimoPreventivo.Numero + " " + fechaCorta(fila.UltimoPreventivo.FechaFinalizacion)
		}
		proximoKm := "-"
		if fila.Vehiculo.ProximoKilometraje != nil {
			proximoKm = strconv.Itoa(*fila.Vehiculo.ProximoKilometraje)
		}
		t.Filas = append(t.Filas, []string{
			fila.Vehiculo.Placa,
			fmt.Sprintf("%s %s", fila.Vehiculo.Marca, fila.Vehiculo.Modelo),
			string(fila.Vehiculo.Estado),
			ultimo,
			proximoKm,
			fechaCorta(fila.Vehiculo.ProximaFecha),
		})
	}

	return documento{
		Titulo:     "Mantenimientos preventivos",
		GeneradoEn: r.GeneradoEn,
		Secciones:  []seccion{{Titulo: "Estado por vehículo", Tabla: t}},
	}
}
