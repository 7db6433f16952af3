package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/themoonexports/catalog-site/config"
	"github.com/themoonexports/catalog-site/extract"
	"github.com/themoonexports/catalog-site/utils"
)

func main() {
	publish := flag.Bool("publish", false, "upload the artifact and gallery images to S3 after building")
	flag.Parse()

	config.LoadConfig()
	root := config.SiteRoot
	outFile := filepath.Join(root, "public", "products.json")

	builder := extract.NewBuilder(root)
	products := builder.Build()

	if err := extract.WriteArtifact(outFile, products); err != nil {
		log.Printf("Failed to write artifact: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d products to public/products.json\n", len(products))

	if *publish {
		var images []string
		for _, p := range products {
			images = append(images, p.Images...)
		}
		url, err := utils.PublishArtifact(context.Background(), outFile, root, images)
		if err != nil {
			log.Printf("Failed to publish artifact: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Published artifact: %s\n", url)
	}
}
