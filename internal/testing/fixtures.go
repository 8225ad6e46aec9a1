package testing

// ScenarioDoc is the reference topology document: one manager, two replicas, one client.
const ScenarioDoc = `manager:
  hostname: mgr
  cpus: 2
  memory: 1024
replica:
  hostname: node
  cpus: 1
  memory: 512
  count: 2
client:
  hostname: cli
  cpus: 1
  memory: 256
  count: 1
`
