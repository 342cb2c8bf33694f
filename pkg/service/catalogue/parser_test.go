package catalogue_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/service/catalogue"
)

const sampleTable = "Technique ID\tTechnique Name\tTechnique Description\tMitigation ID\tMitigation Name\tMitigation Description\n" +
	"T1001\tData Obfuscation\tHide C2 traffic\tM1031\tNetwork Intrusion Prevention\tUse NIPS\n" +
	"T1001\tData Obfuscation\tHide C2 traffic\tM1037\tFilter Network Traffic\tFilter traffic\n" +
	"T1055\tProcess Injection\tInject into processes\tM1040\tBehavior Prevention\tBlock injection\n"

func TestParse_GroupsByTechniqueID(t *testing.T) {
	techniques, err := catalogue.Parse(strings.NewReader(sampleTable), "\t")
	gt.NoError(t, err).Required()

	gt.Number(t, len(techniques)).Equal(2)
	gt.Value(t, techniques[0].ID).Equal("T1001")
	gt.Value(t, techniques[0].Name).Equal("Data Obfuscation")
	gt.Number(t, len(techniques[0].Mitigations)).Equal(2)
	gt.Value(t, techniques[0].Mitigations[0].ID).Equal("M1031")
	gt.Value(t, techniques[0].Mitigations[1].ID).Equal("M1037")

	gt.Value(t, techniques[1].ID).Equal("T1055")
	gt.Number(t, len(techniques[1].Mitigations)).Equal(1)
}

func TestParse_HeaderMatchingIsLoose(t *testing.T) {
	// Columns reordered, decorated and in mixed case
	table := "mitigation name (fr)\tTECHNIQUE ID\tmy technique name\ttechnique description\tmitigation id\tmitigation description\n" +
		"Cloisonnement\tT1001\tObfuscation\tdesc\tM1030\tmdesc\n"

	techniques, err := catalogue.Parse(strings.NewReader(table), "\t")
	gt.NoError(t, err).Required()
	gt.Number(t, len(techniques)).Equal(1)
	gt.Value(t, techniques[0].ID).Equal("T1001")
	gt.Value(t, techniques[0].Mitigations[0].Name).Equal("Cloisonnement")
}

func TestParse_MissingColumnFails(t *testing.T) {
	table := "Technique ID\tTechnique Name\n" + "T1\tX\n"
	_, err := catalogue.Parse(strings.NewReader(table), "\t")
	gt.Error(t, err)
}

func TestParse_EmptyDocumentFails(t *testing.T) {
	_, err := catalogue.Parse(strings.NewReader(""), "\t")
	gt.Error(t, err)
}

func TestParse_SkipsBlankAndIncompleteRows(t *testing.T) {
	table := sampleTable + "\n\t\t\t\t\t\n"
	techniques, err := catalogue.Parse(strings.NewReader(table), "\t")
	gt.NoError(t, err).Required()
	gt.Number(t, len(techniques)).Equal(2)
}

func TestFetcher(t *testing.T) {
	t.Run("fetches and parses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(sampleTable))
		}))
		defer srv.Close()

		fetcher := catalogue.NewFetcher(catalogue.WithHTTPClient(srv.Client()))
		techniques, err := fetcher.Fetch(context.Background(), srv.URL)
		gt.NoError(t, err).Required()
		gt.Number(t, len(techniques)).Equal(2)
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		fetcher := catalogue.NewFetcher(catalogue.WithHTTPClient(srv.Client()))
		_, err := fetcher.Fetch(context.Background(), srv.URL)
		gt.Error(t, err)
	})
}
