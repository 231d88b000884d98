// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Vendedores registrados em cada documento diário
const (
	SellerThauan = "thauan"
	SellerFranco = "franco"
)

// SellerTotals guarda os totais de um vendedor em um dia
type SellerTotals struct {
	TotalGerado float64 `json:"totalGerado" firestore:"totalGerado" bson:"totalGerado"`
	TotalPago   float64 `json:"totalPago" firestore:"totalPago" bson:"totalPago"`
}

// SalesRecord é o documento de vendas de uma data
type SalesRecord struct {
	Thauan SellerTotals `json:"thauan" firestore:"thauan" bson:"thauan"`
	Franco SellerTotals `json:"franco" firestore:"franco" bson:"franco"`
}

// Document é um documento como está gravado no banco, sem conversão de esquema
type Document map[string]any

// SaveSalesInput é o corpo aceito na gravação. Os campos são propositalmente
// permissivos: só a presença é validada, o conteúdo é gravado como veio.
type SaveSalesInput struct {
	Date       any `json:"date"`
	ThauanData any `json:"thauanData"`
	FrancoData any `json:"francoData"`
}

// EmptySalesRecord retorna o registro zerado usado quando a data ainda não tem dados
func EmptySalesRecord() SalesRecord {
	return SalesRecord{}
}

// Document converte o registro para o formato de documento
func (r SalesRecord) Document() Document {
	return Document{
		SellerThauan: map[string]any{"totalGerado": r.Thauan.TotalGerado, "totalPago": r.Thauan.TotalPago},
		SellerFranco: map[string]any{"totalGerado": r.Franco.TotalGerado, "totalPago": r.Franco.TotalPago},
	}
}

// Document monta o payload de merge com os dados dos dois vendedores
func (in SaveSalesInput) Document() Document {
	return Document{
		SellerThauan: in.ThauanData,
		SellerFranco: in.FrancoData,
	}
}

// IsFalsy reproduz a regra de presença aceita pela API: ausente, null, false,
// zero e string vazia contam como não informado.
func IsFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	}
	return false
}
