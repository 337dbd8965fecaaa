package repository

import (
	"context"
	"errors"
	"testing"

	"andicot_proforma/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func s(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }
func n(v string) types.AttributeValue { return &types.AttributeValueMemberN{Value: v} }

func TestFromServiceAttributes_Aliases(t *testing.T) {
	tests := []struct {
		name      string
		item      map[string]types.AttributeValue
		wantTitle string
		wantDesc  string
		wantPrice string
	}{
		{
			name:      "short keys win",
			item:      map[string]types.AttributeValue{"id": s("a"), "t": s("Short"), "titulo": s("Long"), "d": s("sd"), "descripcion": s("ld"), "p": n("10"), "precio_base": n("20")},
			wantTitle: "Short", wantDesc: "sd", wantPrice: "10",
		},
		{
			name:      "long keys when short missing",
			item:      map[string]types.AttributeValue{"id": s("a"), "titulo": s("Long"), "descripcion": s("ld"), "precio_base": n("150")},
			wantTitle: "Long", wantDesc: "ld", wantPrice: "150",
		},
		{
			name:      "blank and zero short keys count as missing",
			item:      map[string]types.AttributeValue{"id": s("a"), "t": s(""), "titulo": s("Long"), "p": n("0"), "precio_base": n("75.5")},
			wantTitle: "Long", wantPrice: "75.5",
		},
		{
			name:      "price stored as text",
			item:      map[string]types.AttributeValue{"id": s("a"), "p": s(" 42.10 ")},
			wantPrice: "42.1",
		},
		{
			name:      "non numeric price is zero",
			item:      map[string]types.AttributeValue{"id": s("a"), "p": s("consultar")},
			wantPrice: "0",
		},
		{
			name:      "negative price is zero",
			item:      map[string]types.AttributeValue{"id": s("a"), "precio_base": n("-5")},
			wantPrice: "0",
		},
		{
			name:      "missing price is zero",
			item:      map[string]types.AttributeValue{"id": s("a"), "titulo": s("x")},
			wantTitle: "x", wantPrice: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromServiceAttributes(tt.item)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.wantTitle || got.Description != tt.wantDesc {
				t.Fatalf("got title=%q desc=%q", got.Title, got.Description)
			}
			if got.UnitPrice.String() != tt.wantPrice {
				t.Fatalf("got price %s, want %s", got.UnitPrice, tt.wantPrice)
			}
		})
	}
}

func TestServiceDynamoRepository_List(t *testing.T) {
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
		{
			Items:            []map[string]types.AttributeValue{{"id": s("b"), "titulo": s("B")}},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": s("b")},
		},
		{
			Items: []map[string]types.AttributeValue{{"id": s("a"), "t": s("A"), "p": n("9")}},
		},
	}}
	repo := NewServiceDynamoRepository(ddb, "svc")

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ddb.scanCalls != 2 {
		t.Fatalf("expected both pages scanned, got %d", ddb.scanCalls)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("expected services ordered by id, got %+v", list)
	}
	if !list[0].UnitPrice.Equal(decimal.NewFromInt(9)) {
		t.Fatalf("unexpected price %s", list[0].UnitPrice)
	}
}

func TestServiceDynamoRepository_SaveWritesCanonicalKeys(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewServiceDynamoRepository(ddb, "svc")

	_, err := repo.Save(context.Background(), entities.Service{
		ID: "cctv", Title: "CCTV", Description: "desc", UnitPrice: decimal.RequireFromString("12.50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := ddb.lastPut.Item
	if v, ok := item["titulo"].(*types.AttributeValueMemberS); !ok || v.Value != "CCTV" {
		t.Fatalf("titulo not written: %#v", item["titulo"])
	}
	if v, ok := item["precio_base"].(*types.AttributeValueMemberN); !ok || v.Value != "12.5" {
		t.Fatalf("precio_base not written as number: %#v", item["precio_base"])
	}
	for _, legacy := range []string{"t", "d", "p", "img", "tags"} {
		if _, ok := item[legacy]; ok {
			t.Fatalf("unexpected key %q in %v", legacy, item)
		}
	}
}

func TestServiceDynamoRepository_UpdateImage(t *testing.T) {
	t.Run("missing service", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		repo := NewServiceDynamoRepository(ddb, "svc")

		got, err := repo.UpdateImage(context.Background(), "ghost", "u")
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty service, got %+v, %v", got, err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{
			Attributes: map[string]types.AttributeValue{"id": s("cctv"), "titulo": s("CCTV"), "img": s("https://cdn/x.png")},
		}}
		repo := NewServiceDynamoRepository(ddb, "svc")

		got, err := repo.UpdateImage(context.Background(), "cctv", "https://cdn/x.png")
		if err != nil || got.Image != "https://cdn/x.png" {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
		if *ddb.lastUpdate.UpdateExpression != "SET #img = :img" {
			t.Fatalf("unexpected expression %q", *ddb.lastUpdate.UpdateExpression)
		}
	})

	t.Run("error", func(t *testing.T) {
		repo := NewServiceDynamoRepository(&fakeDynamo{err: errors.New("boom")}, "svc")
		if _, err := repo.UpdateImage(context.Background(), "cctv", "u"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestServiceDynamoRepository_GetByIDMissing(t *testing.T) {
	repo := NewServiceDynamoRepository(&fakeDynamo{}, "svc")
	got, err := repo.GetByID(context.Background(), "ghost")
	if err != nil || got.ID != "" {
		t.Fatalf("expected empty service, got %+v, %v", got, err)
	}
}
