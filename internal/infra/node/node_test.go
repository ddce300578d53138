package node_test

import (
	"consignment-server/internal/infra/node"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).To(gomega.Equal(node.Version))
			gomega.Expect(nodeInfo.CommitHash).To(gomega.Equal(node.CommitHash))
		})

		ginkgo.It("should return a valid UUID for node ID", func() {
			_, err := uuid.Parse(node.GetNodeInfo().ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should return the same node on multiple calls", func() {
			gomega.Expect(node.GetNodeInfo()).To(gomega.BeIdenticalTo(node.GetNodeInfo()))
		})
	})

	ginkgo.It("should expose version, commit and instance as log attributes", func() {
		nodeInfo := node.GetNodeInfo()

		attrs := map[string]string{}
		for _, attr := range nodeInfo.LogAttrs() {
			attrs[attr.Key] = attr.Value.String()
		}

		gomega.Expect(attrs).To(gomega.Equal(map[string]string{
			"version":  nodeInfo.Version,
			"commit":   nodeInfo.CommitHash,
			"instance": nodeInfo.ID,
		}))
	})
})
