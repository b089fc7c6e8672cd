package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/format"
	"github.com/osse101/InvestSim_Go/internal/handler"
	"github.com/osse101/InvestSim_Go/internal/selection"
)

var kinds = []domain.AssetKind{domain.KindCrypto, domain.KindStock}

func catalogMarkdown(c domain.Catalog, only domain.AssetKind) string {
	var b strings.Builder
	b.WriteString("# Catalog\n\n")
	for _, kind := range kinds {
		if only != "" && only != kind {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", format.Kind(kind))
		assets := c.Assets(kind)
		if len(assets) == 0 {
			b.WriteString("_No assets._\n\n")
			continue
		}
		b.WriteString("| Symbol | Name | Price |\n|---|---|---:|\n")
		for _, a := range assets {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Symbol, escape(a.Name), format.USD(a.UnitPrice))
		}
		b.WriteString("\n")
	}
	if !c.FetchedAt.IsZero() {
		fmt.Fprintf(&b, "_Quotes as of %s_\n", c.FetchedAt.Local().Format(time.RFC1123))
	}
	return b.String()
}

func assetMarkdown(a domain.Asset) string {
	return fmt.Sprintf("# %s\n\n%s (%s)\n\n**Price:** %s\n", a.Symbol, escape(a.Name), a.Kind, format.USD(a.UnitPrice))
}

// rowsMarkdown renders the annotated catalog for the selection. With
// selectedOnly, rows with nothing selected are skipped.
func rowsMarkdown(s *selection.Session, selectedOnly bool) string {
	var b strings.Builder
	b.WriteString("# Selection\n\n")
	for _, kind := range kinds {
		rows := s.Rows(kind)
		writeRows(&b, kind, rows, selectedOnly)
	}
	writeTotals(&b, s)
	return b.String()
}

func writeRows(b *strings.Builder, kind domain.AssetKind, rows []selection.Row, selectedOnly bool) {
	var lines []string
	for _, r := range rows {
		if selectedOnly && r.Selected.IsZero() {
			continue
		}
		mark := "no"
		if r.Purchasable {
			mark = "yes"
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s | %s |",
			r.Asset.Symbol,
			format.USD(r.Asset.UnitPrice),
			format.Quantity(r.Selected, kind),
			format.Quantity(r.MaxQuantity, kind),
			mark,
		))
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", format.Kind(kind))
	b.WriteString("| Symbol | Price | Selected | Max | Purchasable |\n|---|---:|---:|---:|:---:|\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
}

func writeTotals(b *strings.Builder, s *selection.Session) {
	fmt.Fprintf(b, "- **Balance:** %s\n", format.USD(s.Balance()))
	fmt.Fprintf(b, "- **Invest value:** %s\n", format.USD(s.InvestValue()))
	fmt.Fprintf(b, "- **Subtotal:** %s\n", format.USD(s.Subtotal()))
	fmt.Fprintf(b, "- **Remaining:** %s\n", format.USD(s.InvestValue().Sub(s.Subtotal())))
}

func previewMarkdown(p handler.SelectionPreviewResponse) string {
	var b strings.Builder
	b.WriteString("# Selection preview\n\n")
	writeRows(&b, domain.KindCrypto, p.CryptoRows, true)
	writeRows(&b, domain.KindStock, p.StockRows, true)
	fmt.Fprintf(&b, "- **Balance:** %s\n", format.USD(p.Balance))
	fmt.Fprintf(&b, "- **Invest value:** %s\n", format.USD(p.InvestValue))
	fmt.Fprintf(&b, "- **Subtotal:** %s\n", format.USD(p.Subtotal))
	return b.String()
}

func walletMarkdown(w domain.Wallet) string {
	var b strings.Builder
	b.WriteString("# Wallet\n\n")
	if len(w.Entries) == 0 {
		b.WriteString("_Wallet is empty._\n")
		return b.String()
	}
	b.WriteString("| Symbol | Kind | Quantity | Unit value | Value |\n|---|---|---:|---:|---:|\n")
	for _, e := range w.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			e.Symbol, e.Kind, format.Quantity(e.Quantity, e.Kind), format.USD(e.UnitValue), format.USD(e.Value()))
	}
	fmt.Fprintf(&b, "\n**Total:** %s\n", format.USD(w.Total))
	return b.String()
}

func purchasesMarkdown(purchases []domain.Purchase) string {
	var b strings.Builder
	b.WriteString("# Purchases\n\n")
	if len(purchases) == 0 {
		b.WriteString("_No purchases yet._\n")
		return b.String()
	}
	b.WriteString("| Date | Lines | Invest value | Subtotal |\n|---|---|---:|---:|\n")
	for _, p := range purchases {
		syms := make([]string, 0, len(p.Lines))
		for _, l := range p.Lines {
			syms = append(syms, fmt.Sprintf("%s x%s", l.Symbol, format.Quantity(l.Quantity, l.Kind)))
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			p.CreatedAt.Local().Format(time.DateTime), strings.Join(syms, ", "), format.USD(p.InvestValue), format.USD(p.Subtotal))
	}
	return b.String()
}

func receiptMarkdown(r domain.PurchaseReceipt) string {
	var b strings.Builder
	b.WriteString("# Purchase complete\n\n")
	b.WriteString("| Symbol | Quantity | Unit price | Cost |\n|---|---:|---:|---:|\n")
	for _, l := range r.Purchase.Lines {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			l.Symbol, format.Quantity(l.Quantity, l.Kind), format.USD(l.UnitPrice), format.USD(l.Cost))
	}
	fmt.Fprintf(&b, "\n- **Subtotal:** %s\n- **New balance:** %s\n", format.USD(r.Purchase.Subtotal), format.USD(r.Balance))
	return b.String()
}

// escape keeps table cells intact
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
