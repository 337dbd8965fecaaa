package repository

import (
	"math"
	"strings"

	"andicot_proforma/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// serviceItem is the canonical shape written back to the services table.
type serviceItem struct {
	ID          string                `dynamodbav:"id"`
	Title       string                `dynamodbav:"titulo"`
	Description string                `dynamodbav:"descripcion"`
	Price       attributevalue.Number `dynamodbav:"precio_base"`
	Tags        string                `dynamodbav:"tags,omitempty"`
	Image       string                `dynamodbav:"img,omitempty"`
	Icon        string                `dynamodbav:"icono,omitempty"`
}

func toServiceAttributes(s entities.Service) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(serviceItem{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       attributevalue.Number(s.UnitPrice.String()),
		Tags:        s.Tags,
		Image:       s.Image,
		Icon:        s.Icon,
	})
}

// fromServiceAttributes normalizes a raw stored document. Short keys win over
// long ones (t over titulo, d over descripcion, p over precio_base) and a key
// only counts when its value is non-empty and non-zero.
func fromServiceAttributes(item map[string]types.AttributeValue) (entities.Service, error) {
	var doc map[string]any
	err := attributevalue.UnmarshalMapWithOptions(item, &doc, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return entities.Service{}, err
	}

	return entities.Service{
		ID:          asString(doc["id"]),
		Title:       asString(firstPresent(doc, "t", "titulo")),
		Description: asString(firstPresent(doc, "d", "descripcion")),
		UnitPrice:   coercePrice(firstPresent(doc, "p", "precio_base")),
		Tags:        asString(doc["tags"]),
		Image:       asString(doc["img"]),
		Icon:        asString(doc["icono"]),
	}, nil
}

func firstPresent(doc map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := doc[k]; ok && present(v) {
			return v
		}
	}
	return nil
}

func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case attributevalue.Number:
		f, err := x.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return x != 0 && !math.IsNaN(x)
	case bool:
		return x
	default:
		return true
	}
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case attributevalue.Number:
		return string(x)
	default:
		return ""
	}
}

// coercePrice turns a stored price into a non-negative decimal. Anything that
// is not a finite number becomes zero.
func coercePrice(v any) decimal.Decimal {
	var raw string
	switch x := v.(type) {
	case attributevalue.Number:
		raw = string(x)
	case string:
		raw = strings.TrimSpace(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		raw = decimal.NewFromFloat(x).String()
	default:
		return decimal.Zero
	}
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
