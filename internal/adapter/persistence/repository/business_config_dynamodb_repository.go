package repository

import (
	"context"
	"sort"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfigTableName = "configuracion"
	businessConfigID       = "web_data"
)

type heroItem struct {
	Title       string `dynamodbav:"titulo,omitempty"`
	Subtitle    string `dynamodbav:"subtitulo,omitempty"`
	Version     string `dynamodbav:"version,omitempty"`
	Placeholder string `dynamodbav:"placeholder,omitempty"`
}

type statsItem struct {
	Projects string `dynamodbav:"proyectos,omitempty"`
	Years    string `dynamodbav:"años,omitempty"`
	Uptime   string `dynamodbav:"uptime,omitempty"`
	Support  string `dynamodbav:"soporte,omitempty"`
}

type contactItem struct {
	Phone        string `dynamodbav:"tel,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	Address      string `dynamodbav:"direccion,omitempty"`
	WhatsAppLink string `dynamodbav:"wa_link,omitempty"`
}

// socialItem carries both the long keys written by the admin panel and the
// short keys of the seed document.
type socialItem struct {
	Facebook  string `dynamodbav:"facebook,omitempty"`
	Instagram string `dynamodbav:"instagram,omitempty"`
	TikTok    string `dynamodbav:"tiktok,omitempty"`
	FB        string `dynamodbav:"fb,omitempty"`
	IG        string `dynamodbav:"ig,omitempty"`
	TT        string `dynamodbav:"tt,omitempty"`
}

type warrantyItem struct {
	Title       string   `dynamodbav:"titulo,omitempty"`
	Button      string   `dynamodbav:"btn,omitempty"`
	CloseButton string   `dynamodbav:"btn_cierre,omitempty"`
	Items       []string `dynamodbav:"items,omitempty"`
}

type financeItem struct {
	TaxRate      string `dynamodbav:"iva"`
	DiscountRate string `dynamodbav:"descuento"`
}

type businessConfigItem struct {
	ID       string        `dynamodbav:"id"`
	Hero     *heroItem     `dynamodbav:"hero,omitempty"`
	Stats    *statsItem    `dynamodbav:"estadisticas,omitempty"`
	Contact  *contactItem  `dynamodbav:"contacto,omitempty"`
	Social   *socialItem   `dynamodbav:"redes,omitempty"`
	Warranty *warrantyItem `dynamodbav:"garantia,omitempty"`
	Finance  *financeItem  `dynamodbav:"finanzas,omitempty"`
	Brands   []string      `dynamodbav:"marcas,omitempty"`
}

// BusinessConfigDynamoRepository persists the single site configuration
// document (id "web_data").
//
// Save only sets the sections it knows, so attributes edited elsewhere (for
// example the colour palette) survive.
type BusinessConfigDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBusinessConfigRepository = (*BusinessConfigDynamoRepository)(nil)

func NewBusinessConfigDynamoRepository(ddb DynamoAPI, tableName string) *BusinessConfigDynamoRepository {
	return &BusinessConfigDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, "CONFIG_TABLE", defaultConfigTableName),
	}
}

func (r *BusinessConfigDynamoRepository) Get(ctx context.Context) (entities.BusinessConfig, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(businessConfigID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BusinessConfig{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.BusinessConfig{}, false, nil
	}

	var it businessConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BusinessConfig{}, false, err
	}
	return fromBusinessConfigItem(it), true, nil
}

func (r *BusinessConfigDynamoRepository) Save(ctx context.Context, cfg entities.BusinessConfig) error {
	it := toBusinessConfigItem(cfg)
	sections := map[string]any{
		"hero":         it.Hero,
		"estadisticas": it.Stats,
		"contacto":     it.Contact,
		"redes":        it.Social,
		"garantia":     it.Warranty,
		"finanzas":     it.Finance,
	}
	if it.Brands != nil {
		sections["marcas"] = it.Brands
	}

	expr, names, values, err := setExpression(sections)
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(businessConfigID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func toBusinessConfigItem(cfg entities.BusinessConfig) businessConfigItem {
	return businessConfigItem{
		ID: businessConfigID,
		Hero: &heroItem{
			Title:       cfg.Hero.Title,
			Subtitle:    cfg.Hero.Subtitle,
			Version:     cfg.Hero.Version,
			Placeholder: cfg.Hero.Placeholder,
		},
		Stats: &statsItem{
			Projects: cfg.Stats.Projects,
			Years:    cfg.Stats.Years,
			Uptime:   cfg.Stats.Uptime,
			Support:  cfg.Stats.Support,
		},
		Contact: &contactItem{
			Phone:        cfg.Contact.Phone,
			Email:        cfg.Contact.Email,
			Address:      cfg.Contact.Address,
			WhatsAppLink: cfg.Contact.WhatsAppLink,
		},
		Social: &socialItem{
			Facebook:  cfg.Social.Facebook,
			Instagram: cfg.Social.Instagram,
			TikTok:    cfg.Social.TikTok,
		},
		Warranty: &warrantyItem{
			Title:       cfg.Warranty.Title,
			Button:      cfg.Warranty.Button,
			CloseButton: cfg.Warranty.CloseButton,
			Items:       cfg.Warranty.Items,
		},
		Finance: &financeItem{
			TaxRate:      cfg.Finance.TaxRate,
			DiscountRate: cfg.Finance.DiscountRate,
		},
		Brands: cfg.Brands,
	}
}

func fromBusinessConfigItem(it businessConfigItem) entities.BusinessConfig {
	var cfg entities.BusinessConfig
	if h := it.Hero; h != nil {
		cfg.Hero = entities.Hero{Title: h.Title, Subtitle: h.Subtitle, Version: h.Version, Placeholder: h.Placeholder}
	}
	if s := it.Stats; s != nil {
		cfg.Stats = entities.Stats{Projects: s.Projects, Years: s.Years, Uptime: s.Uptime, Support: s.Support}
	}
	if c := it.Contact; c != nil {
		cfg.Contact = entities.Contact{Phone: c.Phone, Email: c.Email, Address: c.Address, WhatsAppLink: c.WhatsAppLink}
	}
	if s := it.Social; s != nil {
		cfg.Social = entities.Social{
			Facebook:  firstNonEmpty(s.Facebook, s.FB),
			Instagram: firstNonEmpty(s.Instagram, s.IG),
			TikTok:    firstNonEmpty(s.TikTok, s.TT),
		}
	}
	if w := it.Warranty; w != nil {
		cfg.Warranty = entities.Warranty{Title: w.Title, Button: w.Button, CloseButton: w.CloseButton, Items: w.Items}
	}
	if f := it.Finance; f != nil {
		cfg.Finance = entities.Finance{TaxRate: f.TaxRate, DiscountRate: f.DiscountRate}
	}
	cfg.Brands = it.Brands
	return cfg
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// setExpression builds "SET #k0 = :k0, ..." over the given top-level
// attributes, in a stable order.
func setExpression(attrs map[string]any) (string, map[string]string, map[string]types.AttributeValue, error) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(keys))
	values := make(map[string]types.AttributeValue, len(keys))
	expr := "SET "
	for i, k := range keys {
		av, err := attributevalue.Marshal(attrs[k])
		if err != nil {
			return "", nil, nil, err
		}
		n, v := "#"+k, ":"+k
		if i > 0 {
			expr += ", "
		}
		expr += n + " = " + v
		names[n] = k
		values[v] = av
	}
	return expr, names, values, nil
}
