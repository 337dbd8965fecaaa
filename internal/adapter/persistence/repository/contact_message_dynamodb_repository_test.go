package repository

import (
	"context"
	"testing"
	"time"

	"andicot_proforma/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestContactMessageItemConversion(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	m := entities.ContactMessage{
		ID: "m1", Name: "Ana", Email: "ana@example.com", Message: "hola",
		Status: entities.ContactStatusPendiente, Source: entities.ContactSourceQuote,
		AINote: entities.DefaultAINote, CreatedAt: created, UpdatedAt: created,
	}
	got := fromContactMessageItem(toContactMessageItem(m))
	if got != m {
		t.Fatalf("conversion mismatch:\n got %+v\nwant %+v", got, m)
	}
}

func TestFromContactMessageItem_LegacyDefaults(t *testing.T) {
	got := fromContactMessageItem(contactMessageItem{ID: "m1", Status: "", CreatedAt: "2026-01-01T00:00:00Z"})
	if got.Status != entities.ContactStatusPendiente || got.Source != entities.ContactSourceForm {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Fatalf("updatedAt should default to createdAt")
	}
}

func TestContactMessageDynamoRepository_Create(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewContactMessageDynamoRepository(ddb, "msgs")

	_, err := repo.Create(context.Background(), entities.ContactMessage{ID: "m1", Status: entities.ContactStatusPendiente})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *ddb.lastPut.ConditionExpression != "attribute_not_exists(#id)" {
		t.Fatalf("create must not overwrite")
	}
	if _, ok := ddb.lastPut.Item["createdAt"]; !ok {
		t.Fatalf("createdAt not written: %v", ddb.lastPut.Item)
	}
}

func TestContactMessageDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		repo := NewContactMessageDynamoRepository(&fakeDynamo{err: &types.ConditionalCheckFailedException{}}, "msgs")
		got, err := repo.UpdateStatus(context.Background(), "ghost", entities.ContactStatusContactado)
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty message, got %+v, %v", got, err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
			"id": s("m1"), "status": s("contactado"), "createdAt": s("2026-01-01T00:00:00Z"),
		}}}
		repo := NewContactMessageDynamoRepository(ddb, "msgs")
		repo.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

		got, err := repo.UpdateStatus(context.Background(), "m1", entities.ContactStatusContactado)
		if err != nil || got.Status != entities.ContactStatusContactado {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
		v := ddb.lastUpdate.ExpressionAttributeValues[":updated_at"].(*types.AttributeValueMemberS).Value
		if v != "2026-01-02T00:00:00Z" {
			t.Fatalf("unexpected updatedAt %q", v)
		}
	})
}

func TestContactMessageDynamoRepository_Delete(t *testing.T) {
	repo := NewContactMessageDynamoRepository(&fakeDynamo{}, "msgs")
	deleted, err := repo.Delete(context.Background(), "ghost")
	if err != nil || deleted {
		t.Fatalf("expected not deleted, got %v %v", deleted, err)
	}

	repo = NewContactMessageDynamoRepository(&fakeDynamo{deleteOut: &dynamodb.DeleteItemOutput{
		Attributes: map[string]types.AttributeValue{"id": s("m1")},
	}}, "msgs")
	deleted, err = repo.Delete(context.Background(), "m1")
	if err != nil || !deleted {
		t.Fatalf("expected deleted, got %v %v", deleted, err)
	}
}

func TestContactMessageDynamoRepository_List(t *testing.T) {
	ddb := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{
		{"id": s("m1"), "name": s("Ana"), "status": s("finalizado"), "createdAt": s("2026-01-01T00:00:00Z")},
	}}}}
	repo := NewContactMessageDynamoRepository(ddb, "msgs")

	list, err := repo.List(context.Background())
	if err != nil || len(list) != 1 || list[0].Status != entities.ContactStatusFinalizado {
		t.Fatalf("unexpected result: %+v, %v", list, err)
	}
}
